package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  api_key: "gemini-key"
fetch:
  firecrawl:
    api_key: "fc-key"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.LLM.Model != DefaultGeminiModel {
		t.Errorf("LLM.Model = %q, want %q", cfg.LLM.Model, DefaultGeminiModel)
	}
	if cfg.LLM.BaseURL != DefaultGeminiBaseURL {
		t.Errorf("LLM.BaseURL = %q, want %q", cfg.LLM.BaseURL, DefaultGeminiBaseURL)
	}
	if cfg.Fetch.Provider != "firecrawl" || cfg.Search.Provider != "serper" {
		t.Errorf("providers = %q/%q, want firecrawl/serper", cfg.Fetch.Provider, cfg.Search.Provider)
	}
	if cfg.Search.Locale != "ja" || cfg.Search.Country != "jp" {
		t.Errorf("locale/country = %q/%q, want ja/jp", cfg.Search.Locale, cfg.Search.Country)
	}
	if cfg.MockDelay() != 2*time.Second {
		t.Errorf("MockDelay() = %v, want 2s", cfg.MockDelay())
	}
	if cfg.MockMode() {
		t.Error("MockMode() = true, want false with both credentials set")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadConfig() error = nil, want error for missing file")
	}
}

func TestConfig_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *Config)
		fetch      bool
		generation bool
		search     bool
	}{
		{name: "empty", mutate: func(c *Config) {}},
		{
			name: "firecrawl and gemini",
			mutate: func(c *Config) {
				c.Fetch.Firecrawl.APIKey = "fc"
				c.LLM.APIKey = "gm"
			},
			fetch: true, generation: true,
		},
		{
			name:   "readability is keyless",
			mutate: func(c *Config) { c.Fetch.Provider = "readability" },
			fetch:  true,
		},
		{
			name:   "serper key",
			mutate: func(c *Config) { c.Search.Serper.APIKey = "sp" },
			search: true,
		},
		{
			name: "tavily without key",
			mutate: func(c *Config) {
				c.Search.Provider = "tavily"
				c.Search.Serper.APIKey = "sp"
			},
		},
		{
			name: "searxng with base url",
			mutate: func(c *Config) {
				c.Search.Provider = "searxng"
				c.Search.SearXNG.BaseURL = "http://localhost:8888"
			},
			search: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if got := cfg.FetchReady(); got != tt.fetch {
				t.Errorf("FetchReady() = %v, want %v", got, tt.fetch)
			}
			if got := cfg.GenerationReady(); got != tt.generation {
				t.Errorf("GenerationReady() = %v, want %v", got, tt.generation)
			}
			if got := cfg.SearchReady(); got != tt.search {
				t.Errorf("SearchReady() = %v, want %v", got, tt.search)
			}
			if got, want := cfg.MockMode(), !(tt.fetch && tt.generation); got != want {
				t.Errorf("MockMode() = %v, want %v", got, want)
			}
		})
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvFirecrawlAPIKey, "env-fc")
	t.Setenv(EnvGeminiAPIKey, " env-gm ")
	t.Setenv(EnvSerperAPIKey, "")

	cfg := Default()
	cfg.Search.Serper.APIKey = "yaml-sp"
	cfg.ApplyEnv()

	if cfg.Fetch.Firecrawl.APIKey != "env-fc" {
		t.Errorf("Firecrawl.APIKey = %q, want env-fc", cfg.Fetch.Firecrawl.APIKey)
	}
	if cfg.LLM.APIKey != "env-gm" {
		t.Errorf("LLM.APIKey = %q, want env-gm", cfg.LLM.APIKey)
	}
	if cfg.Search.Serper.APIKey != "yaml-sp" {
		t.Errorf("Serper.APIKey = %q, want yaml value kept", cfg.Search.Serper.APIKey)
	}
}

func TestConfig_MockDelayNegative(t *testing.T) {
	cfg := Default()
	cfg.Mock.DelayMS = -1
	if cfg.MockDelay() != 0 {
		t.Errorf("MockDelay() = %v, want 0", cfg.MockDelay())
	}
}
