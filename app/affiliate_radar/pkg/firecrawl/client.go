package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/scrape"
)

const defaultBaseURL = "https://api.firecrawl.dev"

// Client Firecrawl API 客户端
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Option 客户端可选项
type Option func(*Client)

// WithBaseURL 替换 API 地址
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient 替换底层 http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewClient 创建一个新的 Firecrawl 客户端
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure Client implements scrape.Scraper
var _ scrape.Scraper = (*Client)(nil)

// Name implements scrape.Scraper
func (c *Client) Name() string { return "Firecrawl" }

// ScrapeRequest Firecrawl 抓取请求参数
type ScrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats,omitempty"`
	OnlyMainContent bool     `json:"onlyMainContent,omitempty"`
}

// ScrapeResponse Firecrawl 抓取响应
type ScrapeResponse struct {
	Success bool       `json:"success"`
	Data    ScrapeData `json:"data"`
	Error   string     `json:"error"`
}

// ScrapeData 抓取到的页面数据
type ScrapeData struct {
	Markdown string   `json:"markdown"`
	Metadata Metadata `json:"metadata"`
}

// Metadata 页面元信息
type Metadata struct {
	Title      string `json:"title"`
	SourceURL  string `json:"sourceURL"`
	StatusCode int    `json:"statusCode"`
}

// Scrape implements scrape.Scraper
func (c *Client) Scrape(ctx context.Context, req *scrape.Request) (*scrape.Response, error) {
	formats := req.Formats
	if len(formats) == 0 {
		formats = []string{scrape.FormatMarkdown}
	}

	resp, err := c.doScrape(ctx, ScrapeRequest{URL: req.URL, Formats: formats})
	if err != nil {
		return nil, err
	}

	return &scrape.Response{
		Markdown:   resp.Data.Markdown,
		Title:      resp.Data.Metadata.Title,
		StatusCode: resp.Data.Metadata.StatusCode,
	}, nil
}

// doScrape 执行抓取 (Internal)
func (c *Client) doScrape(ctx context.Context, req ScrapeRequest) (*ScrapeResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/scrape", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("firecrawl api error (status %d): %s", res.StatusCode, string(body))
	}

	var scrapeResp ScrapeResponse
	if err := json.Unmarshal(body, &scrapeResp); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	if !scrapeResp.Success {
		return nil, fmt.Errorf("firecrawl scrape unsuccessful: %s", scrapeResp.Error)
	}

	return &scrapeResp, nil
}
