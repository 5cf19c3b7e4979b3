package service

import (
	"context"
	"errors"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/errs"
	dm "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/model"
	"github.com/iWorld-y/affiliate_radar/app/gateway/internal/usecase"
)

const (
	OperationAnalyze = "/affiliate_radar.v1.Analyze/Analyze"
	OperationHealth  = "/affiliate_radar.v1.Analyze/Health"
)

// AnalyzeService 对外提供 POST /api/analyze
type AnalyzeService struct {
	uc  *usecase.AnalysisUseCase
	log *log.Helper
}

func NewAnalyzeService(uc *usecase.AnalysisUseCase, logger log.Logger) *AnalyzeService {
	return &AnalyzeService{uc: uc, log: log.NewHelper(logger)}
}

// HealthReply 健康检查响应
type HealthReply struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

func (s *AnalyzeService) Analyze(ctx context.Context, req *dm.AnalysisRequest) (*dm.AnalysisResult, error) {
	if req.URL == "" {
		return nil, errs.New(errs.Validation, "URL is required")
	}
	return s.uc.Analyze(ctx, req.URL)
}

func (s *AnalyzeService) Health(ctx context.Context) (*HealthReply, error) {
	return &HealthReply{Status: "ok", Mode: s.uc.Mode()}, nil
}

// RegisterAnalyzeHTTPServer 注册分析服务的 HTTP 路由
func RegisterAnalyzeHTTPServer(srv *http.Server, s *AnalyzeService) {
	r := srv.Route("/")
	r.POST("/api/analyze", _Analyze_Analyze0_HTTP_Handler(s))
	r.GET("/healthz", _Analyze_Health0_HTTP_Handler(s))
}

func _Analyze_Analyze0_HTTP_Handler(s *AnalyzeService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in dm.AnalysisRequest
		if err := ctx.Bind(&in); err != nil {
			s.log.WithContext(ctx).Warnf("请求体解析失败: %v", err)
			return writeError(ctx, nethttp.StatusBadRequest, "Invalid request body")
		}
		http.SetOperation(ctx, OperationAnalyze)
		h := ctx.Middleware(func(ctx context.Context, req any) (any, error) {
			return s.Analyze(ctx, req.(*dm.AnalysisRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return writeError(ctx, statusOf(err), err.Error())
		}
		return ctx.JSON(nethttp.StatusOK, out)
	}
}

func _Analyze_Health0_HTTP_Handler(s *AnalyzeService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, OperationHealth)
		h := ctx.Middleware(func(ctx context.Context, req any) (any, error) {
			return s.Health(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return writeError(ctx, nethttp.StatusInternalServerError, err.Error())
		}
		return ctx.JSON(nethttp.StatusOK, out)
	}
}

// statusOf 只有缺少 url 属于客户端错误，其余失败一律 500
func statusOf(err error) int {
	var appErr *errs.AppError
	if errors.As(err, &appErr) && appErr.Kind == errs.Validation {
		return nethttp.StatusBadRequest
	}
	return nethttp.StatusInternalServerError
}

func writeError(ctx http.Context, code int, msg string) error {
	return ctx.JSON(code, &dm.ErrorResponse{Error: msg})
}
