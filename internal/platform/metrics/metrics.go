package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the privileged action
// pipeline.
type Metrics struct {
	PrivilegedActions  *prometheus.CounterVec
	AuditWriteFailures prometheus.Counter
	SuppressedSubmits  *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		PrivilegedActions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dealerdesk_privileged_actions_total",
			Help: "Privileged account mutations by action and outcome",
		}, []string{"action", "outcome"}),
		AuditWriteFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dealerdesk_audit_write_failures_total",
			Help: "Audit entries that failed to persist (logged, never surfaced)",
		}),
		SuppressedSubmits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "dealerdesk_suppressed_submissions_total",
			Help: "Requests rejected by the duplicate-submission guard",
		}, []string{"action"}),
	}
}

// ObserveAction records one pipeline outcome.
func (m *Metrics) ObserveAction(action, outcome string) {
	if m == nil {
		return
	}
	m.PrivilegedActions.WithLabelValues(action, outcome).Inc()
}

// ObserveAuditFailure records a swallowed audit write failure.
func (m *Metrics) ObserveAuditFailure() {
	if m == nil {
		return
	}
	m.AuditWriteFailures.Inc()
}

// ObserveSuppressed records a duplicate submission rejection.
func (m *Metrics) ObserveSuppressed(action string) {
	if m == nil {
		return
	}
	m.SuppressedSubmits.WithLabelValues(action).Inc()
}
