package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts search and facet calls by category and kind.
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autozar_queries_total",
		Help: "Total listing queries by category and kind (search, facet, get)",
	}, []string{"category", "kind"})

	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "autozar_query_duration_seconds",
		Help:    "Listing query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"kind"})

	// LifecycleTransitions counts lifecycle operations by outcome.
	LifecycleTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autozar_lifecycle_transitions_total",
		Help: "Lifecycle operations by operation and result (ok, invalid, not_found, error)",
	}, []string{"op", "result"})

	MalformedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autozar_malformed_records_total",
		Help: "Persisted listing records skipped during snapshot",
	}, []string{"category"})

	// PersistedRecords is refreshed by the audit worker.
	PersistedRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "autozar_persisted_records",
		Help: "Persisted listing records by category and state (valid, malformed)",
	}, []string{"category", "state"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "autozar_http_requests_total",
		Help: "HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})
)
