package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client Gemini 原生 API 客户端，仅用于查询可用模型
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient 创建 Gemini 客户端，baseURL 为空时使用官方地址
func NewClient(apiKey string, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  http.DefaultClient,
	}
}

// Model 模型描述
type Model struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// ID 去掉 "models/" 前缀后的模型名，可直接填入配置
func (m Model) ID() string {
	return strings.TrimPrefix(m.Name, "models/")
}

// SupportsGenerateContent 是否支持 generateContent
func (m Model) SupportsGenerateContent() bool {
	return slices.Contains(m.SupportedGenerationMethods, "generateContent")
}

type listModelsResponse struct {
	Models []Model `json:"models"`
}

// ListModels 列出 API Key 可用的全部模型
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	endpoint := c.baseURL + "/models?key=" + url.QueryEscape(c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

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
		return nil, fmt.Errorf("gemini api error (status %d): %s", res.StatusCode, string(body))
	}

	var listResp listModelsResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	return listResp.Models, nil
}

// ListGenerationModels 只返回支持 generateContent 的模型
func (c *Client) ListGenerationModels(ctx context.Context) ([]Model, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(models, func(m Model) bool { return !m.SupportsGenerateContent() }), nil
}
