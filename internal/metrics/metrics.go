package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Enhancement outcomes.
const (
	OutcomeEnhanced   = "enhanced"
	OutcomeDisabled   = "disabled"
	OutcomeDegenerate = "degenerate"
	OutcomeTimeout    = "timeout"
	OutcomeError      = "error"
)

var (
	IntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canvas_assistant_intents_total",
			Help: "Classified chat turns by intent",
		},
		[]string{"intent"},
	)

	EnhancementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canvas_assistant_enhancements_total",
			Help: "Reply enhancement attempts by outcome",
		},
		[]string{"outcome"},
	)

	EnhancementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "canvas_assistant_enhancement_duration_seconds",
			Help:    "Duration of reply enhancement calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canvas_assistant_cache_lookups_total",
			Help: "Enhanced reply cache lookups by result",
		},
		[]string{"result"},
	)
)
