package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for rule applications.
type Metrics struct {
	registry  *prometheus.Registry
	applied   *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	graphSize *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		applied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aegraph_rule_applications_total",
				Help: "Total number of rule applications",
			},
			[]string{"rule"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aegraph_rule_rejections_total",
				Help: "Total number of refused moves",
			},
			[]string{"rule"},
		),
		graphSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aegraph_result_length_bytes",
				Help:    "Length of the canonical text of rule results",
				Buckets: prometheus.ExponentialBuckets(4, 2, 10),
			},
			[]string{"rule"},
		),
	}
	m.registry.MustRegister(m.applied, m.rejected, m.graphSize)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnApply: func(_ context.Context, e *domain.RuleEvent) {
			m.applied.WithLabelValues(e.Rule).Inc()
			m.graphSize.WithLabelValues(e.Rule).Observe(float64(len(e.After)))
		},
		OnReject: func(_ context.Context, e *domain.RuleEvent) {
			m.rejected.WithLabelValues(e.Rule).Inc()
		},
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
