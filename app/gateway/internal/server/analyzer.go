package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/config"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/engine"
	arLogger "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/logger"
	"github.com/iWorld-y/affiliate_radar/app/gateway/internal/conf"
)

// NewAnalyzer 初始化分析引擎，缺少凭证时得到 mock 实现
func NewAnalyzer(c *conf.Analyzer, logger log.Logger) (engine.Analyzer, func(), error) {
	helper := log.NewHelper(logger)
	arCfg := ToConfig(c)

	if err := arLogger.InitLogger(arCfg.Log.Level, arCfg.Log.File); err != nil {
		helper.Errorf("Failed to init affiliate_radar logger: %v", err)
		_ = arLogger.InitLogger("info", "") // 降级处理
	}

	analyzer, err := engine.NewEngine(context.Background(), arCfg)
	if err != nil {
		helper.Errorf("Failed to init analyzer: %v", err)
		return nil, nil, err
	}
	helper.Infof("analyzer ready, mode=%s", analyzer.Mode())

	cleanup := func() {
		helper.Info("Cleaning up affiliate_radar analyzer")
	}
	return analyzer, cleanup, nil
}

// ToConfig 将 internal/conf.Analyzer 转换为 pkg/config.Config，并叠加环境变量中的凭证
func ToConfig(c *conf.Analyzer) *config.Config {
	cfg := &config.Config{}
	if c != nil {
		if f := c.Fetch; f != nil {
			cfg.Fetch.Provider = f.Provider
			cfg.Fetch.Timeout = int(f.Timeout)
			if f.Firecrawl != nil {
				cfg.Fetch.Firecrawl = config.FirecrawlConfig{
					APIKey:  f.Firecrawl.ApiKey,
					BaseURL: f.Firecrawl.BaseUrl,
				}
			}
		}
		if l := c.Llm; l != nil {
			cfg.LLM = config.LLMConfig{
				BaseURL: l.BaseUrl,
				APIKey:  l.ApiKey,
				Model:   l.Model,
			}
		}
		if s := c.Search; s != nil {
			cfg.Search.Provider = s.Provider
			cfg.Search.Locale = s.Locale
			cfg.Search.Country = s.Country
			if s.Serper != nil {
				cfg.Search.Serper.APIKey = s.Serper.ApiKey
			}
			if s.Tavily != nil {
				cfg.Search.Tavily.APIKey = s.Tavily.ApiKey
			}
			if s.Searxng != nil {
				cfg.Search.SearXNG = config.SearXNGConfig{
					BaseURL: s.Searxng.BaseUrl,
					Timeout: int(s.Searxng.Timeout),
				}
			}
		}
		if c.Mock != nil {
			cfg.Mock.DelayMS = int(c.Mock.DelayMs)
		}
		if c.Log != nil {
			cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
		}
	}

	cfg.ApplyDefaults()
	cfg.ApplyEnv()
	return cfg
}
