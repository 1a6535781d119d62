// Package metrics records operation counts and latencies for the RSA
// engine and exposes them in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder tracks per-operation counters and duration histograms on its
// own registry, so tests and embedded use never collide with the global
// default registry.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	failures   *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Recorder{
		registry: registry,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rsacore",
			Name:      "operations_total",
			Help:      "Completed operations by kind.",
		}, []string{"op"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rsacore",
			Name:      "failures_total",
			Help:      "Failed operations by kind.",
		}, []string{"op"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rsacore",
			Name:      "operation_duration_seconds",
			Help:      "Operation latency by kind.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op"}),
	}
}

// Observe records one completed operation of the given kind.
func (r *Recorder) Observe(op string, d time.Duration, err error) {
	r.operations.WithLabelValues(op).Inc()
	r.durations.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		r.failures.WithLabelValues(op).Inc()
	}
}

// Time runs fn, records its duration under op, and returns its error.
func (r *Recorder) Time(op string, fn func() error) error {
	start := time.Now()
	err := fn()
	r.Observe(op, time.Since(start), err)
	return err
}

// Handler returns an HTTP handler serving the recorder's registry in
// Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
