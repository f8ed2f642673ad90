// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, import sessions, and
// calls to the external authority.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "dashboard_user_import"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Session metrics - track import session lifecycle
	SessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "total",
			Help:      "Total number of import sessions by terminal status",
		},
		[]string{"status"},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Number of import sessions currently held in memory",
		},
	)

	// Step metrics - track operator actions through the import flow
	StepActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "steps",
			Name:      "actions_total",
			Help:      "Total number of step transitions by step, action, and result",
		},
		[]string{"step", "action", "result"},
	)

	// Remote validation metrics - track authority-side credential checks
	RemoteValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "validations_total",
			Help:      "Total number of remote credential validations by step and outcome",
		},
		[]string{"step", "outcome"},
	)

	RemoteValidationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "validation_duration_seconds",
			Help:      "Remote credential validation duration in seconds, per step",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"step"},
	)

	// Commit metrics - track per-user creation calls
	CommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "commits",
			Name:      "total",
			Help:      "Total number of user commit calls by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveRemoteValidation records one joined remote validation round.
func ObserveRemoteValidation(step, outcome string, durationSeconds float64) {
	RemoteValidationsTotal.WithLabelValues(step, outcome).Inc()
	RemoteValidationDuration.WithLabelValues(step).Observe(durationSeconds)
}

// ObserveStepAction records one operator-driven step transition.
func ObserveStepAction(step, action, result string) {
	StepActionsTotal.WithLabelValues(step, action, result).Inc()
}

// ObserveCommit records the outcome of one user commit call.
func ObserveCommit(outcome string) {
	CommitsTotal.WithLabelValues(outcome).Inc()
}

// SessionStarted marks a new session as live.
func SessionStarted() {
	SessionsActive.Inc()
}

// SessionRemoved marks a session as evicted from memory.
func SessionRemoved() {
	SessionsActive.Dec()
}

// SessionFinished records a session reaching a terminal status
// (completed, cancelled, expired).
func SessionFinished(status string) {
	SessionsTotal.WithLabelValues(status).Inc()
}

// Timer is a helper for measuring operation duration.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time since the timer was created.
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(time.Since(t.start).Seconds())
}
