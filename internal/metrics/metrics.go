// Package metrics bundles Prometheus collectors for the analyzer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the analysis pipeline.
// All methods are nil-safe so metrics stay optional in tests.
type Metrics struct {
	Registry          *prometheus.Registry
	RequestsTotal     *prometheus.CounterVec
	FailuresTotal     *prometheus.CounterVec
	FetchesTotal      *prometheus.CounterVec
	AdvanceDuration   prometheus.Histogram
	ListingsNormalise prometheus.Counter
}

// New constructs and registers all collectors on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_requests_total",
			Help: "Total requests reaching a terminal state, by outcome.",
		},
		[]string{"outcome"},
	)
	failures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_failures_total",
			Help: "Total failed requests by failure reason.",
		},
		[]string{"reason"},
	)
	fetches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyzer_fetches_total",
			Help: "Total provider fetch attempts by result.",
		},
		[]string{"result"},
	)
	advanceDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analyzer_advance_duration_seconds",
			Help:    "Latency of the normalise-score-store transition.",
			Buckets: prometheus.DefBuckets,
		},
	)
	normalised := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyzer_listings_normalised_total",
			Help: "Total payloads normalised into canonical listings.",
		},
	)

	registry.MustRegister(requests, failures, fetches, advanceDuration, normalised)

	return &Metrics{
		Registry:          registry,
		RequestsTotal:     requests,
		FailuresTotal:     failures,
		FetchesTotal:      fetches,
		AdvanceDuration:   advanceDuration,
		ListingsNormalise: normalised,
	}
}

// IncRequest increments the terminal-outcome counter.
func (m *Metrics) IncRequest(outcome string) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

// IncFailure increments the failure counter for a reason label.
func (m *Metrics) IncFailure(reason string) {
	if m == nil {
		return
	}
	m.FailuresTotal.WithLabelValues(reason).Inc()
}

// IncFetch increments the fetch counter for a result label.
func (m *Metrics) IncFetch(result string) {
	if m == nil {
		return
	}
	m.FetchesTotal.WithLabelValues(result).Inc()
}

// ObserveAdvance records how long one advance transition took.
func (m *Metrics) ObserveAdvance(d time.Duration) {
	if m == nil {
		return
	}
	m.AdvanceDuration.Observe(d.Seconds())
}

// IncNormalised increments the normalised listings counter.
func (m *Metrics) IncNormalised() {
	if m == nil {
		return
	}
	m.ListingsNormalise.Inc()
}
