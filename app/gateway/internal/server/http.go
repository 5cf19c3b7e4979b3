package server

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iWorld-y/affiliate_radar/app/gateway/internal/conf"
	"github.com/iWorld-y/affiliate_radar/app/gateway/internal/middleware/requestid"
	"github.com/iWorld-y/affiliate_radar/app/gateway/internal/service"
)

const defaultTimeout = 2 * time.Minute

func NewHTTPServer(c *conf.Server, s *service.AnalyzeService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		// 一次分析会串行调用三个上游服务，kratos 默认的 1s 超时不够用
		http.Timeout(defaultTimeout),
		http.Middleware(
			recovery.Recovery(),
			requestid.Server(),
		),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			} else {
				log.NewHelper(logger).Warnf("invalid server timeout %q: %v", c.Http.Timeout, err)
			}
		}
	}

	srv := http.NewServer(opts...)
	service.RegisterAnalyzeHTTPServer(srv, s)
	srv.Handle("/metrics", promhttp.Handler())

	return srv
}
