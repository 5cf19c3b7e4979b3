package engine

// State 分析流水线所处的阶段
type State int

const (
	StateIdle State = iota
	StateFetching
	StateExtracting
	StateEnriching
	StateDone
	// StateErrored 只能从 Fetching 或 Extracting 进入
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateExtracting:
		return "extracting"
	case StateEnriching:
		return "enriching"
	case StateDone:
		return "done"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// EnrichmentOutcome 联盟检索的结果类型，四种结果对外都表现为可能为空的 affiliate_info
type EnrichmentOutcome string

const (
	EnrichmentOK      EnrichmentOutcome = "ok"
	EnrichmentEmpty   EnrichmentOutcome = "empty"
	EnrichmentSkipped EnrichmentOutcome = "skipped"
	EnrichmentFailed  EnrichmentOutcome = "failed"
)

type options struct {
	onTransition func(State)
	onEnrichment func(EnrichmentOutcome, error)
}

// Option 流水线可选项
type Option func(*options)

// WithTransitionHook 每次进入新状态时回调
func WithTransitionHook(fn func(State)) Option {
	return func(o *options) { o.onTransition = fn }
}

// WithEnrichmentHook 联盟检索结束后回调，err 为被降级处理的原始错误
func WithEnrichmentHook(fn func(EnrichmentOutcome, error)) Option {
	return func(o *options) { o.onEnrichment = fn }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) transition(s State) {
	if o.onTransition != nil {
		o.onTransition(s)
	}
}

func (o options) enrichment(outcome EnrichmentOutcome, err error) {
	if o.onEnrichment != nil {
		o.onEnrichment(outcome, err)
	}
}
