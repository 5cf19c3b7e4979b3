package engine

import (
	"context"
	"errors"
	"fmt"

	dm "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/model"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/search"
)

const (
	// affiliateKeywords 日语的「联盟营销 ASP」，用于把结果偏向 ASP 平台
	affiliateKeywords = "アフィリエイト ASP"
	// MaxCandidates affiliate_info 的最大条数
	MaxCandidates = 5
)

// ErrSearchDisabled 未配置搜索凭证
var ErrSearchDisabled = errors.New("affiliate search disabled: search credential not configured")

// AffiliateSearcher 按服务名检索联盟营销候选
type AffiliateSearcher struct {
	searcher search.Searcher
	locale   string
	country  string
}

// NewAffiliateSearcher 创建 AffiliateSearcher，searcher 为 nil 表示未配置凭证
func NewAffiliateSearcher(s search.Searcher, locale, country string) *AffiliateSearcher {
	return &AffiliateSearcher{searcher: s, locale: locale, country: country}
}

// Search 返回最多 MaxCandidates 条候选，保持服务商的相关度顺序
func (a *AffiliateSearcher) Search(ctx context.Context, serviceName string) ([]dm.AffiliateCandidate, error) {
	if a.searcher == nil {
		return nil, ErrSearchDisabled
	}

	resp, err := a.searcher.Search(ctx, &search.Request{
		Query:      serviceName + " " + affiliateKeywords,
		MaxResults: MaxCandidates,
		Locale:     a.locale,
		Country:    a.country,
	})
	if err != nil {
		return nil, fmt.Errorf("affiliate search: %w", err)
	}
	if resp == nil {
		return []dm.AffiliateCandidate{}, nil
	}

	candidates := make([]dm.AffiliateCandidate, 0, min(len(resp.Results), MaxCandidates))
	for _, r := range resp.Results {
		if len(candidates) >= MaxCandidates {
			break
		}
		candidates = append(candidates, dm.AffiliateCandidate{
			Title:   r.Title,
			Link:    r.URL,
			Snippet: r.Content,
		})
	}
	return candidates, nil
}
