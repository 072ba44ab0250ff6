package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	requestsTotal *prometheus.CounterVec
	providerFetch *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_requests_total",
				Help: "Total number of API requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		providerFetch: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_provider_fetches_total",
				Help: "Total number of upstream provider fetches",
			},
			[]string{"symbol", "outcome"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_cache_lookups_total",
				Help: "Total number of cache lookups by result",
			},
			[]string{"result"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stocklens_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stocklens_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordRequest records a completed API request.
func (r *Recorder) RecordRequest(endpoint, status string) {
	r.requestsTotal.WithLabelValues(endpoint, status).Inc()
}

// RecordProviderFetch records an upstream fetch attempt and its outcome.
func (r *Recorder) RecordProviderFetch(symbol, outcome string) {
	r.providerFetch.WithLabelValues(symbol, outcome).Inc()
}

// RecordCacheLookup records a cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records the duration of an operation in seconds.
func (r *Recorder) RecordLatency(operation string, seconds float64) {
	r.latency.WithLabelValues(operation).Observe(seconds)
}
