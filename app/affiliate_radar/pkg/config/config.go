package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultGeminiBaseURL Gemini 的 OpenAI 兼容入口
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	// DefaultGeminiModel 默认使用的 Gemini 模型
	DefaultGeminiModel = "gemini-flash-latest"
	// DefaultFirecrawlBaseURL Firecrawl API 地址
	DefaultFirecrawlBaseURL = "https://api.firecrawl.dev"
	// DefaultMockDelay mock 模式下模拟的处理耗时
	DefaultMockDelay = 2 * time.Second
)

// 环境变量中的凭证名称
const (
	EnvFirecrawlAPIKey = "FIRECRAWL_API_KEY"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
	EnvSerperAPIKey    = "SERPER_API_KEY"
	EnvTavilyAPIKey    = "TAVILY_API_KEY"
)

// Config 项目配置结构体
type Config struct {
	Fetch  FetchConfig  `yaml:"fetch"`
	LLM    LLMConfig    `yaml:"llm"`
	Search SearchConfig `yaml:"search"`
	Mock   MockConfig   `yaml:"mock"`
	Log    LogConfig    `yaml:"log"`
}

// FetchConfig 页面抓取相关配置
type FetchConfig struct {
	Provider  string          `yaml:"provider"` // firecrawl or readability
	Firecrawl FirecrawlConfig `yaml:"firecrawl"`
	Timeout   int             `yaml:"timeout"` // 仅 readability 使用，单位秒
}

// FirecrawlConfig Firecrawl 配置
type FirecrawlConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// SearchConfig 搜索相关配置
type SearchConfig struct {
	Provider string        `yaml:"provider"` // serper, tavily or searxng
	Locale   string        `yaml:"locale"`
	Country  string        `yaml:"country"`
	Serper   SerperConfig  `yaml:"serper"`
	Tavily   TavilyConfig  `yaml:"tavily"`
	SearXNG  SearXNGConfig `yaml:"searxng"`
}

// SerperConfig Serper 配置
type SerperConfig struct {
	APIKey string `yaml:"api_key"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// MockConfig mock 模式配置
type MockConfig struct {
	DelayMS int `yaml:"delay_ms"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default 返回填充了默认值的配置
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// ApplyDefaults 为未设置的字段填充默认值
func (c *Config) ApplyDefaults() {
	if c.Fetch.Provider == "" {
		c.Fetch.Provider = "firecrawl"
	}
	if c.Fetch.Firecrawl.BaseURL == "" {
		c.Fetch.Firecrawl.BaseURL = DefaultFirecrawlBaseURL
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = DefaultGeminiBaseURL
	}
	if c.LLM.Model == "" {
		c.LLM.Model = DefaultGeminiModel
	}
	if c.Search.Provider == "" {
		c.Search.Provider = "serper"
	}
	if c.Search.Locale == "" {
		c.Search.Locale = "ja"
	}
	if c.Search.Country == "" {
		c.Search.Country = "jp"
	}
	if c.Mock.DelayMS == 0 {
		c.Mock.DelayMS = int(DefaultMockDelay / time.Millisecond)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ApplyEnv 读取 .env.local / .env 后，用环境变量中的凭证覆盖配置
func (c *Config) ApplyEnv() {
	// 文件不存在时忽略，已存在的环境变量不会被覆盖
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	overlay := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	overlay(&c.Fetch.Firecrawl.APIKey, EnvFirecrawlAPIKey)
	overlay(&c.LLM.APIKey, EnvGeminiAPIKey)
	overlay(&c.Search.Serper.APIKey, EnvSerperAPIKey)
	overlay(&c.Search.Tavily.APIKey, EnvTavilyAPIKey)
}

// FetchReady 抓取服务凭证是否就绪，readability 不需要凭证
func (c *Config) FetchReady() bool {
	switch c.Fetch.Provider {
	case "readability":
		return true
	default:
		return c.Fetch.Firecrawl.APIKey != ""
	}
}

// GenerationReady 生成服务凭证是否就绪
func (c *Config) GenerationReady() bool {
	return c.LLM.APIKey != ""
}

// SearchReady 搜索服务凭证是否就绪
func (c *Config) SearchReady() bool {
	switch c.Search.Provider {
	case "tavily":
		return c.Search.Tavily.APIKey != ""
	case "searxng":
		return c.Search.SearXNG.BaseURL != ""
	default:
		return c.Search.Serper.APIKey != ""
	}
}

// MockMode 缺少抓取或生成凭证时进入 mock 模式
func (c *Config) MockMode() bool {
	return !c.FetchReady() || !c.GenerationReady()
}

// MockDelay mock 模式下的模拟耗时
func (c *Config) MockDelay() time.Duration {
	if c.Mock.DelayMS < 0 {
		return 0
	}
	return time.Duration(c.Mock.DelayMS) * time.Millisecond
}
