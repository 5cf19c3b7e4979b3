package factory

import (
	"testing"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/config"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/searxng"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/serper"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/tavily"
)

func TestNewSearcher(t *testing.T) {
	t.Run("serper", func(t *testing.T) {
		cfg := config.Default()
		cfg.Search.Serper.APIKey = "sp"
		s, err := NewSearcher(cfg)
		if err != nil {
			t.Fatalf("NewSearcher() error = %v", err)
		}
		if _, ok := s.(*serper.Client); !ok {
			t.Errorf("NewSearcher() = %T, want *serper.Client", s)
		}
	})

	t.Run("tavily", func(t *testing.T) {
		cfg := config.Default()
		cfg.Search.Provider = "tavily"
		cfg.Search.Tavily.APIKey = "tv"
		s, err := NewSearcher(cfg)
		if err != nil {
			t.Fatalf("NewSearcher() error = %v", err)
		}
		if _, ok := s.(*tavily.Client); !ok {
			t.Errorf("NewSearcher() = %T, want *tavily.Client", s)
		}
	})

	t.Run("searxng", func(t *testing.T) {
		cfg := config.Default()
		cfg.Search.Provider = "searxng"
		cfg.Search.SearXNG.BaseURL = "http://localhost:8888"
		s, err := NewSearcher(cfg)
		if err != nil {
			t.Fatalf("NewSearcher() error = %v", err)
		}
		if _, ok := s.(*searxng.Client); !ok {
			t.Errorf("NewSearcher() = %T, want *searxng.Client", s)
		}
	})

	for _, provider := range []string{"serper", "tavily", "searxng", "bing"} {
		t.Run(provider+" not configured", func(t *testing.T) {
			cfg := config.Default()
			cfg.Search.Provider = provider
			if _, err := NewSearcher(cfg); err == nil {
				t.Error("NewSearcher() error = nil, want error")
			}
		})
	}
}
