package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SessionMetrics records design-session activity.
type SessionMetrics struct {
	commits     *prometheus.CounterVec
	undos       prometheus.Counter
	active      prometheus.Gauge
	submissions *prometheus.HistogramVec
}

// NewSessionMetrics registers the session metrics on the provided
// registerer. A nil registerer yields an inert instance.
func NewSessionMetrics(reg prometheus.Registerer) *SessionMetrics {
	if reg == nil {
		return &SessionMetrics{}
	}
	commits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "design_commits_total",
		Help: "Committed design mutations by operation.",
	}, []string{"op"})
	undos := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "design_undos_total",
		Help: "Undo operations applied to design sessions.",
	})
	active := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "design_sessions_active",
		Help: "Design sessions currently held in the registry.",
	})
	submissions := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "design_submission_duration_seconds",
		Help:    "Duration of design submissions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	reg.MustRegister(commits, undos, active, submissions)
	return &SessionMetrics{
		commits:     commits,
		undos:       undos,
		active:      active,
		submissions: submissions,
	}
}

// IncCommit increments the commit counter for the named operation.
func (m *SessionMetrics) IncCommit(op string) {
	if m == nil || m.commits == nil {
		return
	}
	m.commits.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncUndo increments the undo counter.
func (m *SessionMetrics) IncUndo() {
	if m == nil || m.undos == nil {
		return
	}
	m.undos.Inc()
}

// SetActiveSessions records the current registry size.
func (m *SessionMetrics) SetActiveSessions(n int) {
	if m == nil || m.active == nil {
		return
	}
	m.active.Set(float64(n))
}

// ObserveSubmission records how long a submission took.
func (m *SessionMetrics) ObserveSubmission(outcome string, duration time.Duration) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
