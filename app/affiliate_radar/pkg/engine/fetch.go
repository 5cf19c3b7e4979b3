package engine

import (
	"context"
	"strings"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/errs"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/scrape"
)

// ContentFetcher 抓取页面并返回 markdown 文本
type ContentFetcher struct {
	scraper scrape.Scraper
}

// NewContentFetcher 创建 ContentFetcher
func NewContentFetcher(s scrape.Scraper) *ContentFetcher {
	return &ContentFetcher{scraper: s}
}

// Fetch 抓取 url，调用失败与内容为空都返回 errs.Fetch
func (f *ContentFetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.scraper.Scrape(ctx, &scrape.Request{
		URL:     url,
		Formats: []string{scrape.FormatMarkdown},
	})
	if err != nil {
		return "", errs.Wrap(errs.Fetch, f.scraper.Name()+" failed", err)
	}
	if resp == nil || strings.TrimSpace(resp.Markdown) == "" {
		return "", errs.New(errs.Fetch, "Failed to scrape content from URL (No markdown returned)")
	}
	return resp.Markdown, nil
}
