package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "searches_total",
			Help:      "Total number of product searches by answering source",
		},
		[]string{"source"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "assistant",
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"source"},
	)

	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "search_cache_total",
			Help:      "Search cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SearchFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "search_fallbacks_total",
			Help:      "Searches answered by the embedded catalog after a remote failure",
		},
	)

	SearchErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "search_errors_total",
			Help:      "Searches that surfaced an error to the caller",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Safe to call
// more than once; only the first call registers.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchCacheTotal)
	prometheus.MustRegister(SearchFallbacksTotal)
	prometheus.MustRegister(SearchErrorsTotal)
	searchMetricsRegistered = true
}
