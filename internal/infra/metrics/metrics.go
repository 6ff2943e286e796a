// Package metrics registers the prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shelf"

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// External catalog
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_requests_total",
			Help:      "Total number of external catalog lookups by kind and outcome",
		},
		[]string{"kind", "outcome"}, // outcome: "ok", "error", "rejected"
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_request_duration_seconds",
			Help:      "Duration of external catalog lookups in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"kind"},
	)

	CatalogBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_breaker_state",
			Help:      "Circuit breaker state for the external catalog (0=closed, 1=half-open, 2=open)",
		},
	)

	// Recommendations
	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_candidates",
			Help:      "Number of candidates returned per recommendation request",
			Buckets:   []float64{0, 1, 5, 10, 15, 20},
		},
	)

	// Database
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Duration of SQL statements by kind",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"kind"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_query_errors_total",
			Help:      "Total number of failed SQL statements by kind",
		},
		[]string{"kind"},
	)

	DBOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Current number of open database connections",
		},
	)

	DBWaitCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_wait_count_total",
			Help:      "Total number of connections waited for",
		},
	)
)

// RecordHTTPRequest records one served request
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCatalogRequest records one catalog lookup
func RecordCatalogRequest(kind, outcome string, duration time.Duration) {
	CatalogRequestsTotal.WithLabelValues(kind, outcome).Inc()
	CatalogRequestDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// SetCatalogBreakerState publishes the breaker state as a number
func SetCatalogBreakerState(state int) {
	CatalogBreakerState.Set(float64(state))
}

// RecordRecommendations records the size of a recommendation list
func RecordRecommendations(count int) {
	RecommendationCandidates.Observe(float64(count))
}

// RecordDBQuery records one SQL statement
func RecordDBQuery(kind string, duration time.Duration, failed bool) {
	DBQueryDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if failed {
		DBQueryErrors.WithLabelValues(kind).Inc()
	}
}

// RecordDBPool publishes pool statistics. waitDelta is the wait count since the previous sample.
func RecordDBPool(openConns int, waitDelta int64) {
	DBOpenConnections.Set(float64(openConns))
	if waitDelta > 0 {
		DBWaitCount.Add(float64(waitDelta))
	}
}
