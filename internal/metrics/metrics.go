// Package metrics holds the Prometheus collectors of the inbox API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// Submission outcomes.
const (
	OutcomeStored    = "stored"
	OutcomeJournaled = "journaled"
	OutcomeRejected  = "rejected"
	OutcomeLost      = "lost"
)

// Result labels shared by notifications and mutations.
const (
	ResultOK          = "ok"
	ResultFailed      = "failed"
	ResultNotFound    = "not_found"
	ResultUnavailable = "unavailable"
)

type Metrics struct {
	Submissions     *prometheus.CounterVec
	Notifications   *prometheus.CounterVec
	Mutations       *prometheus.CounterVec
	JournalReplayed prometheus.Counter

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers every collector on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not panic.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		Notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_notifications_total",
			Help:      "Reply notifications by delivery result.",
		}, []string{"result"}),
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_mutations_total",
			Help:      "Admin mutations by operation and result.",
		}, []string{"op", "result"}),
		JournalReplayed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "journal_replayed_total",
			Help:      "Journaled submissions imported into the store.",
		}),
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// The helpers below accept a nil receiver so components can run without
// metrics in tools such as cmd/seed.

func (m *Metrics) Submission(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Notification(result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(result).Inc()
}

func (m *Metrics) Mutation(op, result string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(op, result).Inc()
}

func (m *Metrics) Replayed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.JournalReplayed.Add(float64(n))
}
