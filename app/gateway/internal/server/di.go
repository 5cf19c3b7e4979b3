package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/affiliate_radar/app/gateway/internal/service"
	"github.com/iWorld-y/affiliate_radar/app/gateway/internal/usecase"
)

// ProviderSet 是网关服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Engine providers
	NewAnalyzer,

	// UseCase providers
	usecase.NewAnalysisUseCase,

	// Service providers
	service.NewAnalyzeService,
)
