package usecase

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/engine"
	dm "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/model"
	"github.com/iWorld-y/affiliate_radar/app/gateway/internal/middleware/requestid"
)

// AnalysisUseCase 页面分析业务逻辑
type AnalysisUseCase struct {
	analyzer engine.Analyzer
	log      *log.Helper
}

// NewAnalysisUseCase 创建页面分析业务逻辑实例
func NewAnalysisUseCase(analyzer engine.Analyzer, logger log.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{analyzer: analyzer, log: log.NewHelper(logger)}
}

// Analyze 对单个 URL 执行完整分析，请求之间互不共享状态
func (uc *AnalysisUseCase) Analyze(ctx context.Context, url string) (*dm.AnalysisResult, error) {
	start := time.Now()
	result, err := uc.analyzer.Analyze(ctx, url)
	if err != nil {
		uc.log.WithContext(ctx).Errorw(
			"msg", "分析失败",
			"request_id", requestid.FromContext(ctx),
			"url", url,
			"mode", uc.analyzer.Mode(),
			"err", err,
		)
		return nil, err
	}
	uc.log.WithContext(ctx).Infow(
		"msg", "分析完成",
		"request_id", requestid.FromContext(ctx),
		"url", url,
		"mode", uc.analyzer.Mode(),
		"service_name", result.ServiceName,
		"affiliate_count", len(result.AffiliateInfo),
		"latency", time.Since(start).String(),
	)
	return result, nil
}

// Mode 当前运行模式 (live / mock)
func (uc *AnalysisUseCase) Mode() string {
	return uc.analyzer.Mode()
}
