package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the application.
type Metrics struct {
	EntitiesCreated *prometheus.CounterVec
	EntitiesDeleted *prometheus.CounterVec
	LoginAttempts   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		EntitiesCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hearth_entities_created_total",
			Help: "Total number of entities created, by kind.",
		}, []string{"kind"}),
		EntitiesDeleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hearth_entities_deleted_total",
			Help: "Total number of entities deleted, by kind.",
		}, []string{"kind"}),
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hearth_login_attempts_total",
			Help: "Total number of login attempts, by outcome.",
		}, []string{"outcome"}),
	}
}

// IncrementCreated bumps the created counter for an entity kind.
func (m *Metrics) IncrementCreated(kind string) {
	m.EntitiesCreated.WithLabelValues(kind).Inc()
}

// IncrementDeleted bumps the deleted counter for an entity kind.
func (m *Metrics) IncrementDeleted(kind string) {
	m.EntitiesDeleted.WithLabelValues(kind).Inc()
}

// IncrementLogin bumps the login counter with "success" or "failure".
func (m *Metrics) IncrementLogin(outcome string) {
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}
