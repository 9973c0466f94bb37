// Package metrics defines and registers all custom Prometheus metrics for
// the job-board API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors are registered with the default registry via promauto at
// package init; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ── Workflow metrics ──────────────────────────────────────────────────────────

// ApplicationsCreatedTotal counts successfully created applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of applications created.",
	},
)

// StatusTransitionsTotal counts applied workflow transitions.
// Label:
//   - status: the new application status (e.g. "Screening")
var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Total number of application status transitions applied.",
	},
	[]string{"status"},
)

// TransitionRejectionsTotal counts workflow transitions refused before any
// state change.
// Label:
//   - reason: "invalid_transition" or "forbidden"
var TransitionRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transition_rejections_total",
		Help:      "Total number of status transitions rejected, by reason.",
	},
	[]string{"reason"},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsCreatedTotal counts newly published postings.
// Label:
//   - employment_type: "full-time", "part-time", "contract" or "internship"
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job postings created, by employment type.",
	},
	[]string{"employment_type"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// EmailsSentTotal counts notification emails handed to the SMTP collaborator.
// Label:
//   - kind: "application_received" or "status_changed"
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of notification emails sent, by kind.",
	},
	[]string{"kind"},
)

// EmailFailuresTotal counts notification deliveries that failed. Failures
// are logged and dropped, never retried.
// Label:
//   - kind: "application_received" or "status_changed"
var EmailFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_failures_total",
		Help:      "Total number of notification emails that failed to send, by kind.",
	},
	[]string{"kind"},
)
