package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeChanged   = "changed"
	OutcomeUnchanged = "unchanged"
	OutcomeFailed    = "failed"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	MilestoneStatusRecomputes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "milestone_status_recompute_total",
			Help: "Milestone status recomputations by outcome",
		},
		[]string{"outcome"}, // changed, unchanged, failed
	)

	SummaryCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_cache_lookups_total",
			Help: "Period summary cache lookups by result",
		},
		[]string{"result"}, // hit, miss, error
	)
)

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, statusClass(status)).Observe(duration.Seconds())
}

func RecordRecompute(outcome string) {
	MilestoneStatusRecomputes.WithLabelValues(outcome).Inc()
}

func RecordCacheLookup(result string) {
	SummaryCacheLookups.WithLabelValues(result).Inc()
}

// statusClass keeps label cardinality bounded.
func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
