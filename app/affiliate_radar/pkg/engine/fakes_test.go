package engine

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/scrape"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/search"
)

type fakeScraper struct {
	resp  *scrape.Response
	err   error
	calls int
	last  *scrape.Request
}

func (f *fakeScraper) Scrape(_ context.Context, req *scrape.Request) (*scrape.Response, error) {
	f.calls++
	f.last = req
	return f.resp, f.err
}

func (f *fakeScraper) Name() string { return "Firecrawl" }

type fakeChatModel struct {
	content string
	err     error
	calls   int
	prompts []string
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.calls++
	for _, m := range input {
		f.prompts = append(f.prompts, m.Content)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &schema.Message{Role: schema.Assistant, Content: f.content}, nil
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

type fakeSearcher struct {
	results []search.Result
	err     error
	calls   int
	last    *search.Request
}

func (f *fakeSearcher) Search(_ context.Context, req *search.Request) (*search.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &search.Response{Results: f.results}, nil
}

const validListingJSON = `{"service_name":"X Card","reward":"1,000 pt","conditions":["apply"],"denial_conditions":["dup"]}`
