package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/sirupsen/logrus"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/config"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/errs"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/logger"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/metrics"
	dm "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/model"
	scrapefactory "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/scrape/factory"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/search"
	searchfactory "github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/search/factory"
)

const (
	ModeLive = "live"
	ModeMock = "mock"
)

// Analyzer 分析流水线的统一入口，live 与 mock 两种实现
type Analyzer interface {
	Analyze(ctx context.Context, url string) (*dm.AnalysisResult, error)
	Mode() string
}

// Fetcher 抓取阶段
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor 结构化提取阶段
type Extractor interface {
	Extract(ctx context.Context, text string) (*dm.ExtractedListing, error)
}

// Enricher 联盟检索阶段，返回的错误不会中断流水线
type Enricher interface {
	Search(ctx context.Context, serviceName string) ([]dm.AffiliateCandidate, error)
}

// NewEngine 根据配置选择实现：缺少抓取或生成凭证时返回 MockAnalyzer
func NewEngine(ctx context.Context, cfg *config.Config, opts ...Option) (Analyzer, error) {
	if cfg.MockMode() {
		logger.Log.Warn("缺少 Firecrawl 或 Gemini 凭证，使用 mock 模式")
		return NewMockAnalyzer(cfg.MockDelay(), opts...), nil
	}

	scraper, err := scrapefactory.NewScraper(cfg)
	if err != nil {
		return nil, fmt.Errorf("抓取客户端初始化失败: %w", err)
	}

	// Gemini 通过 OpenAI 兼容接口调用
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	var searcher search.Searcher
	if cfg.SearchReady() {
		searcher, err = searchfactory.NewSearcher(cfg)
		if err != nil {
			return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
		}
	} else {
		logger.Log.Infof("未配置 %s 搜索凭证，affiliate_info 将为空", cfg.Search.Provider)
	}

	return NewPipeline(
		NewContentFetcher(scraper),
		NewStructuredExtractor(chatModel),
		NewAffiliateSearcher(searcher, cfg.Search.Locale, cfg.Search.Country),
		opts...,
	), nil
}

// Pipeline live 模式：抓取 → 提取 → 联盟检索，严格串行
type Pipeline struct {
	fetcher   Fetcher
	extractor Extractor
	enricher  Enricher
	opts      options
}

// NewPipeline 创建 live 流水线，enricher 为 nil 时跳过联盟检索
func NewPipeline(f Fetcher, e Extractor, s Enricher, opts ...Option) *Pipeline {
	return &Pipeline{
		fetcher:   f,
		extractor: e,
		enricher:  s,
		opts:      newOptions(opts),
	}
}

// Ensure Pipeline implements Analyzer
var _ Analyzer = (*Pipeline)(nil)

// Mode implements Analyzer
func (p *Pipeline) Mode() string { return ModeLive }

// Analyze 执行一次完整分析，抓取或提取失败时不返回任何部分结果
func (p *Pipeline) Analyze(ctx context.Context, url string) (*dm.AnalysisResult, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errs.New(errs.Validation, "URL is required")
	}
	log := logger.Log.WithField("url", url)

	// 1. 抓取
	p.opts.transition(StateFetching)
	log.Info("开始抓取页面")
	start := time.Now()
	markdown, err := p.fetcher.Fetch(ctx, url)
	metrics.ObserveStage("fetch", start)
	if err != nil {
		return nil, p.fail(log, "fetch_error", err)
	}
	log.Infof("抓取成功，内容长度: %d", len(markdown))

	// 2. 结构化提取
	p.opts.transition(StateExtracting)
	start = time.Now()
	listing, err := p.extractor.Extract(ctx, markdown)
	metrics.ObserveStage("extract", start)
	if err != nil {
		return nil, p.fail(log, "extraction_error", err)
	}
	log.Infof("提取成功: %s", listing.ServiceName)

	// 3. 联盟检索，失败只降级为空列表
	p.opts.transition(StateEnriching)
	candidates := p.enrich(ctx, log, listing.ServiceName)

	p.opts.transition(StateDone)
	metrics.RecordAnalysis(ModeLive, "done")
	return &dm.AnalysisResult{
		ExtractedListing: *listing,
		AffiliateInfo:    candidates,
	}, nil
}

func (p *Pipeline) fail(log *logrus.Entry, outcome string, err error) error {
	p.opts.transition(StateErrored)
	metrics.RecordAnalysis(ModeLive, outcome)
	log.Errorf("分析失败 [%s]: %v", errs.KindOf(err), err)
	return err
}

func (p *Pipeline) enrich(ctx context.Context, log *logrus.Entry, serviceName string) []dm.AffiliateCandidate {
	start := time.Now()
	var (
		candidates []dm.AffiliateCandidate
		err        = ErrSearchDisabled
	)
	if p.enricher != nil {
		candidates, err = p.enricher.Search(ctx, serviceName)
	}
	metrics.ObserveStage("enrich", start)

	var outcome EnrichmentOutcome
	switch {
	case errors.Is(err, ErrSearchDisabled):
		outcome = EnrichmentSkipped
		log.Info("未配置搜索凭证，跳过联盟检索")
	case err != nil:
		outcome = EnrichmentFailed
		log.Warnf("联盟检索失败，affiliate_info 置空: %v", err)
	case len(candidates) == 0:
		outcome = EnrichmentEmpty
		log.Info("联盟检索无结果")
	default:
		outcome = EnrichmentOK
		log.Infof("联盟检索完成，候选 %d 条", len(candidates))
	}
	metrics.RecordEnrichment(string(outcome))
	p.opts.enrichment(outcome, err)

	if err != nil || candidates == nil {
		return []dm.AffiliateCandidate{}
	}
	return candidates
}
