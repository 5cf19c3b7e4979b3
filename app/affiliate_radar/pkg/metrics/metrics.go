package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "affiliate_radar_analyses_total",
			Help: "Total number of analyses executed",
		},
		[]string{"mode", "outcome"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "affiliate_radar_stage_duration_seconds",
			Help:    "Duration of each pipeline stage in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"stage"},
	)

	EnrichmentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "affiliate_radar_enrichment_total",
			Help: "Affiliate search outcomes (ok, empty, skipped, failed)",
		},
		[]string{"outcome"},
	)
)

// RecordAnalysis 记录一次分析的结果
func RecordAnalysis(mode, outcome string) {
	AnalysesTotal.WithLabelValues(mode, outcome).Inc()
}

// ObserveStage 记录单个阶段的耗时
func ObserveStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// RecordEnrichment 记录联盟检索的结果
func RecordEnrichment(outcome string) {
	EnrichmentTotal.WithLabelValues(outcome).Inc()
}
