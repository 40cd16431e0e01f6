package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores del zoológico.
type Metrics struct {
	registry *prometheus.Registry

	admitted *prometheus.CounterVec
	rejected *prometheus.CounterVec
	actions  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		admitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zoo_residents_admitted_total",
				Help: "Animals admitted through the factory, by kind",
			},
			[]string{"kind"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zoo_admissions_rejected_total",
				Help: "Admissions rejected by the factory, by reason",
			},
			[]string{"reason"},
		),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zoo_actions_total",
				Help: "Actions performed on residents, by kind and action",
			},
			[]string{"kind", "action"},
		),
	}
	m.registry.MustRegister(m.admitted, m.rejected, m.actions)
	return m
}

func (m *Metrics) Admitted(kind string) {
	if m == nil {
		return
	}
	m.admitted.WithLabelValues(kind).Inc()
}

func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) Action(kind, action string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(kind, action).Inc()
}

// Handler expone /metrics para este registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer se usa en tests para leer los valores.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
