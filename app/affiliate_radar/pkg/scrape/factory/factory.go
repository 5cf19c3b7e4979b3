package factory

import (
	"fmt"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/config"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/firecrawl"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/readable"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/scrape"
)

// NewScraper 根据配置创建抓取实例
func NewScraper(cfg *config.Config) (scrape.Scraper, error) {
	switch cfg.Fetch.Provider {
	case "", "firecrawl":
		if cfg.Fetch.Firecrawl.APIKey == "" {
			return nil, fmt.Errorf("firecrawl api key is missing")
		}
		return firecrawl.NewClient(cfg.Fetch.Firecrawl.APIKey, firecrawl.WithBaseURL(cfg.Fetch.Firecrawl.BaseURL)), nil

	case "readability":
		return readable.NewClient(cfg.Fetch.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown fetch provider: %s", cfg.Fetch.Provider)
	}
}
