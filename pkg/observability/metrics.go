// Package observability provides Prometheus instrumentation for the
// sequencer and its front ends.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for the stepper. A nil *Metrics is valid
// and turns every observation into a no-op, so callers never need to
// guard instrumentation sites.
type Metrics struct {
	registry *prometheus.Registry

	stepsAdvanced   *prometheus.CounterVec
	providerErrors  prometheus.Counter
	providerLatency prometheus.Histogram
	sessionsStarted prometheus.Counter
}

// NewMetrics creates a metrics set on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stepsAdvanced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soulmate_steps_advanced_total",
				Help: "Number of steps successfully advanced, by step name.",
			},
			[]string{"step"},
		),
		providerErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "soulmate_provider_errors_total",
			Help: "Number of failed provider completions.",
		}),
		providerLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "soulmate_provider_latency_seconds",
			Help:    "Latency of provider completions.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "soulmate_sessions_started_total",
			Help: "Number of fresh sessions started.",
		}),
	}

	m.registry.MustRegister(m.stepsAdvanced, m.providerErrors, m.providerLatency, m.sessionsStarted)
	return m
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveAdvance records a successful step advance and its provider latency.
func (m *Metrics) ObserveAdvance(step string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.stepsAdvanced.WithLabelValues(step).Inc()
	m.providerLatency.Observe(elapsed.Seconds())
}

// ObserveProviderError records a failed provider completion.
func (m *Metrics) ObserveProviderError() {
	if m == nil {
		return
	}
	m.providerErrors.Inc()
}

// ObserveSessionStart records a fresh session.
func (m *Metrics) ObserveSessionStart() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}
