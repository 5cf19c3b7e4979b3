package readable

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/scrape"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client 基于 go-readability 的本地抓取实现，不需要任何凭证
type Client struct {
	client *http.Client
}

// NewClient 创建 readability 抓取客户端，timeout 为 0 时使用 30 秒
func NewClient(timeout int) *Client {
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{client: &http.Client{Timeout: t}}
}

// Ensure Client implements scrape.Scraper
var _ scrape.Scraper = (*Client)(nil)

// Name implements scrape.Scraper
func (c *Client) Name() string { return "Readability" }

// Scrape 抓取 URL 并提取正文纯文本，结果放在 Markdown 字段中
func (c *Client) Scrape(ctx context.Context, req *scrape.Request) (*scrape.Response, error) {
	pageURL, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return nil, fmt.Errorf("page responded with status %d: %s", res.StatusCode, string(body))
	}

	article, err := readability.FromReader(res.Body, pageURL)
	if err != nil {
		return nil, fmt.Errorf("readability parse failed: %w", err)
	}

	return &scrape.Response{
		Markdown:   article.TextContent,
		Title:      article.Title,
		StatusCode: res.StatusCode,
	}, nil
}
