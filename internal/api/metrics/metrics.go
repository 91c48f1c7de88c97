// Package metrics defines and registers all custom Prometheus metrics for
// the intake API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "intake"

// ── Submission metrics ────────────────────────────────────────────────────────

// SubmissionsCreatedTotal counts newly created intake submissions.
// Label:
//   - domain: one category tag per selected domain (a submission with three
//     tags increments three series)
var SubmissionsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_created_total",
		Help:      "Total number of intake submissions created, by domain tag.",
	},
	[]string{"domain"},
)

// SubmissionsRejectedTotal counts intake payloads rejected before any store
// contact.
// Label:
//   - reason: short description of the failure (e.g. "empty_domain", "invalid_payload")
var SubmissionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_rejected_total",
		Help:      "Total number of intake submissions rejected by validation.",
	},
	[]string{"reason"},
)

// ReviewSavesTotal counts persisted review updates.
// Label:
//   - status: the status the submission was moved to
var ReviewSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "review_saves_total",
		Help:      "Total number of admin review saves, by resulting status.",
	},
	[]string{"status"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "not_admin"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AdminGateDeniedTotal counts requests turned away by the admin gate.
// Label:
//   - reason: "unauthenticated", "revoked", or "no_profile"
var AdminGateDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_gate_denied_total",
		Help:      "Total number of admin-area requests denied, by reason.",
	},
	[]string{"reason"},
)
