package engine

import (
	"context"
	"strings"
	"time"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/errs"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/logger"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/metrics"
	dm "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/model"
)

// MockAnalyzer 无凭证时的实现：等待固定时长后返回固定的示例结果
type MockAnalyzer struct {
	delay time.Duration
	opts  options
}

// NewMockAnalyzer 创建 MockAnalyzer
func NewMockAnalyzer(delay time.Duration, opts ...Option) *MockAnalyzer {
	return &MockAnalyzer{delay: delay, opts: newOptions(opts)}
}

// Ensure MockAnalyzer implements Analyzer
var _ Analyzer = (*MockAnalyzer)(nil)

// Mode implements Analyzer
func (m *MockAnalyzer) Mode() string { return ModeMock }

// Analyze 不经过抓取、提取、检索，直接进入 Done
func (m *MockAnalyzer) Analyze(ctx context.Context, url string) (*dm.AnalysisResult, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errs.New(errs.Validation, "URL is required")
	}
	logger.Log.WithField("url", url).Info("缺少 API 凭证，返回 mock 数据")

	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		metrics.RecordAnalysis(ModeMock, "canceled")
		return nil, ctx.Err()
	case <-timer.C:
	}

	m.opts.transition(StateDone)
	metrics.RecordAnalysis(ModeMock, "done")
	return MockResult(), nil
}

// MockResult 返回固定的示例结果，每次调用都是新的副本
func MockResult() *dm.AnalysisResult {
	return &dm.AnalysisResult{
		ExtractedListing: dm.ExtractedListing{
			ServiceName: "Mock Service (Gemini Example)",
			Reward:      "1,000 Points (1,000 JPY)",
			Conditions: []string{
				"New registration",
				"Complete profile within 7 days",
				"Exchange at least 300 points",
			},
			DenialConditions: []string{
				"Duplicate registration",
				"False information",
				"Past registration history",
			},
		},
		AffiliateInfo: []dm.AffiliateCandidate{
			{
				Title:   "A8.net: Mock Service Affiliate Program",
				Link:    "https://www.a8.net/",
				Snippet: "High reward campaign for new users. Join the Mock Service affiliate program on A8.net.",
			},
			{
				Title:   "ValueCommerce: Mock Service Promotion",
				Link:    "https://www.valuecommerce.ne.jp/",
				Snippet: "Promote Mock Service and earn rewards. Special terms apply for top affiliates.",
			},
		},
	}
}
