package search

import "context"

// Searcher 定义通用的搜索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query      string
	MaxResults int
	Locale     string // 界面语言，例如 "ja"
	Country    string // 目标市场，例如 "jp"
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果，按服务商的相关度排序
type Result struct {
	Title   string
	URL     string
	Content string // 摘要
	Score   float64
}
