package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the ship registry.
// A nil *MetricsRegistry is valid and records nothing.
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Store Metrics
	StoreQueriesTotal  *prometheus.CounterVec
	StoreQueryDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	ShipMutationsTotal *prometheus.CounterVec
	ShipsListed        prometheus.Histogram
}

// NewMetricsRegistry initializes all metrics and registers them with reg.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shipyard_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "shipyard_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		// Store Metrics
		StoreQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_store_queries_total",
				Help: "Total record store operations by operation type and outcome",
			},
			[]string{"query_type", "outcome"},
		),
		StoreQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shipyard_store_query_duration_seconds",
				Help:    "Record store operation time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		ShipMutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shipyard_ship_mutations_total",
				Help: "Ships created, updated and deleted",
			},
			[]string{"operation"},
		),
		ShipsListed: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shipyard_ships_listed",
				Help:    "Number of ships matching a list or count query",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

// ObserveStoreQuery records one store operation that started at start.
func (m *MetricsRegistry) ObserveStoreQuery(queryType string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.StoreQueriesTotal.WithLabelValues(queryType, outcome).Inc()
	m.StoreQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// ObserveCache records a cache lookup for keys matching pattern.
func (m *MetricsRegistry) ObserveCache(pattern string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHitsTotal.WithLabelValues(pattern).Inc()
		return
	}
	m.CacheMissesTotal.WithLabelValues(pattern).Inc()
}

func (m *MetricsRegistry) IncShipMutation(operation string) {
	if m == nil {
		return
	}
	m.ShipMutationsTotal.WithLabelValues(operation).Inc()
}

func (m *MetricsRegistry) ObserveShipsListed(n int) {
	if m == nil {
		return
	}
	m.ShipsListed.Observe(float64(n))
}
