package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TripsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "mishwar", Name: "trips_created_total", Help: "Total trips created"})

	TripTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "mishwar", Name: "trip_transitions_total", Help: "Committed trip state transitions by event"},
		[]string{"event"},
	)
	SideEffectFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "mishwar", Name: "side_effect_failures_total", Help: "Post-commit side effects that failed and were swallowed"},
		[]string{"kind"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "mishwar", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mishwar",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
