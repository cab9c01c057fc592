package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Crafting Metrics
var (
	ActionsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsApplied,
			Help: HelpTextActionsApplied,
		},
		[]string{LabelAction, LabelResult},
	)

	OutcomeSetSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameOutcomeSetSize,
			Help:    HelpTextOutcomeSetSize,
			Buckets: OutcomeSetBuckets,
		},
		[]string{LabelAction},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheLookups,
			Help: HelpTextCatalogCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Simulation Metrics
var (
	EpisodesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEpisodesCompleted,
			Help: HelpTextEpisodesCompleted,
		},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBatchDuration,
			Help:    HelpTextBatchDuration,
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	BatchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBatchErrors,
			Help: HelpTextBatchErrors,
		},
	)
)

// RecordAction counts one action application and the size of its outcome set.
func RecordAction(action string, noop bool, outcomes int) {
	result := ResultApplied
	if noop {
		result = ResultNoOp
	}
	ActionsApplied.WithLabelValues(action, result).Inc()
	OutcomeSetSize.WithLabelValues(action).Observe(float64(outcomes))
}
