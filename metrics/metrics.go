// Package metrics exposes Prometheus collectors for audit and user activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "useradmin"

// Outcomes recorded for user operations
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds the application collectors
type Metrics struct {
	LogEntries        *prometheus.CounterVec
	LogAppendFailures prometheus.Counter
	UserOperations    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the application collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the application collectors on reg
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		LogEntries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_entries_total",
			Help:      "Audit log entries appended, by action and entity type.",
		}, []string{"action", "entity_type"}),
		LogAppendFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "log_append_failures_total",
			Help:      "Audit log appends that failed after the audited change was stored.",
		}),
		UserOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_operations_total",
			Help:      "User mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		gatherer: gatherer,
	}
}

// Handler returns the scrape endpoint for the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// LogAppended counts an appended log entry
func (m *Metrics) LogAppended(action, entityType string) {
	m.LogEntries.WithLabelValues(action, entityType).Inc()
}

// LogAppendFailed counts an audit append that failed
func (m *Metrics) LogAppendFailed() {
	m.LogAppendFailures.Inc()
}

// UserOperation counts a user mutation outcome
func (m *Metrics) UserOperation(operation, outcome string) {
	m.UserOperations.WithLabelValues(operation, outcome).Inc()
}
