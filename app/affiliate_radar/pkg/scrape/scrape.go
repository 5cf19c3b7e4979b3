package scrape

import "context"

// FormatMarkdown 请求 markdown 格式的页面内容
const FormatMarkdown = "markdown"

// Scraper 定义通用的页面抓取接口
type Scraper interface {
	Scrape(ctx context.Context, req *Request) (*Response, error)
	// Name 抓取服务名称，用于错误信息
	Name() string
}

// Request 通用抓取请求
type Request struct {
	URL     string
	Formats []string
}

// Response 通用抓取响应
type Response struct {
	Markdown   string
	Title      string
	StatusCode int
}
