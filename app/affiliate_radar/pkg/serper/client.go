package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/search"
)

const defaultBaseURL = "https://google.serper.dev/search"

// Client Serper (Google 搜索) API 客户端
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的 Serper 客户端，baseURL 为空时使用官方地址
func NewClient(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// SearchRequest Serper 搜索请求参数
type SearchRequest struct {
	Q   string `json:"q"`
	GL  string `json:"gl,omitempty"` // 国家
	HL  string `json:"hl,omitempty"` // 语言
	Num int    `json:"num,omitempty"`
}

// SearchResponse Serper 搜索响应
type SearchResponse struct {
	Organic []OrganicResult `json:"organic"`
}

// OrganicResult 自然搜索结果
type OrganicResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}

// Search implements search.Searcher
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	payload, err := json.Marshal(SearchRequest{
		Q:   req.Query,
		GL:  req.Country,
		HL:  req.Locale,
		Num: req.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	httpReq.Header.Set("X-API-KEY", c.apiKey)
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
		return nil, fmt.Errorf("serper api error (status %d): %s", res.StatusCode, string(body))
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}

	results := make([]search.Result, 0, len(searchResp.Organic))
	for _, r := range searchResp.Organic {
		results = append(results, search.Result{
			Title:   r.Title,
			URL:     r.Link,
			Content: r.Snippet,
		})
	}

	return &search.Response{Results: results}, nil
}
