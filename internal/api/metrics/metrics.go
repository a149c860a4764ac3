// Package metrics defines and registers all custom Prometheus metrics for
// the career back-office API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "career"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully registered principals.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of principals registered.",
	},
)

// ── Moderation metrics ────────────────────────────────────────────────────────

// InquiriesSubmittedTotal counts public contact-form submissions accepted.
var InquiriesSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_submitted_total",
		Help:      "Total number of contact inquiries accepted.",
	},
)

// FeedbackSubmittedTotal counts public feedback submissions accepted into
// the moderation queue.
var FeedbackSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_submitted_total",
		Help:      "Total number of feedback submissions accepted.",
	},
)

// FeedbackModeratedTotal counts moderation decisions.
// Label:
//   - decision: "approved" or "rejected"
var FeedbackModeratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feedback_moderated_total",
		Help:      "Total number of feedback moderation decisions, by outcome.",
	},
	[]string{"decision"},
)

// ── Entity metrics ────────────────────────────────────────────────────────────

// EntityMutationsTotal counts successful entity writes.
// Labels:
//   - entity: collection name (e.g. "client", "candidate")
//   - action: "create", "update", or "delete"
var EntityMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_mutations_total",
		Help:      "Total number of successful entity mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)
