package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	// Registry is exposed so the /metrics endpoint can serve it.
	Registry *prometheus.Registry

	requestDuration    *prometheus.HistogramVec
	requestsTotal      *prometheus.CounterVec
	generationDuration prometheus.Histogram
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
	cacheErrors        *prometheus.CounterVec
}

// NewMetrics registers every collector in a private registry, so it can be
// called once per test without duplicate registration panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dss_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dss_http_requests_total",
				Help: "Total HTTP requests by route and status code.",
			},
			[]string{"route", "status"},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dss_metrics_generation_seconds",
				Help:    "Time spent generating a metrics payload.",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005},
			},
		),
		cacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dss_metrics_cache_hits_total",
				Help: "Total metrics cache hits.",
			},
		),
		cacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dss_metrics_cache_misses_total",
				Help: "Total metrics cache misses.",
			},
		),
		cacheErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dss_metrics_cache_errors_total",
				Help: "Total metrics cache errors by operation.",
			},
			[]string{"op"},
		),
	}
}

func (m *Metrics) RecordRequest(route, status string, d time.Duration) {
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
	m.requestsTotal.WithLabelValues(route, status).Inc()
}

func (m *Metrics) RecordGeneration(d time.Duration) {
	m.generationDuration.Observe(d.Seconds())
}

func (m *Metrics) IncrCacheHit() {
	m.cacheHits.Inc()
}

func (m *Metrics) IncrCacheMiss() {
	m.cacheMisses.Inc()
}

func (m *Metrics) IncrCacheError(op string) {
	m.cacheErrors.WithLabelValues(op).Inc()
}
