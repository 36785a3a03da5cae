// Package metrics defines and registers all custom Prometheus metrics for the
// LegalConnect platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at init time; the
// /metrics endpoint exposed by the router serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "legalconnect"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - role: "client" or "lawyer"
//   - result: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SignupsTotal counts accounts created through self-service signup.
// Label:
//   - role: "client" or "lawyer"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created via signup, by role.",
	},
	[]string{"role"},
)

// ── Booking and case metrics ──────────────────────────────────────────────────

// AppointmentsBookedTotal counts appointments booked by clients.
// Label:
//   - case_type: the legal specialty the booking is for (e.g. "Criminal Law")
var AppointmentsBookedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments booked, by case type.",
	},
	[]string{"case_type"},
)

// CasesOpenedTotal counts cases opened by lawyers.
// Label:
//   - case_type: the legal specialty of the case
var CasesOpenedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cases_opened_total",
		Help:      "Total number of cases opened, by case type.",
	},
	[]string{"case_type"},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

// MessagesSentTotal counts chat messages sent on case threads.
// Label:
//   - role: sender role, "client" or "lawyer"
var MessagesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of chat messages sent, by sender role.",
	},
	[]string{"role"},
)

// NotificationsCreatedTotal counts in-app notifications written.
// Label:
//   - type: notification type ("appointment", "message", "document", "task", "case")
var NotificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications created, by type.",
	},
	[]string{"type"},
)

// ── Document metrics ──────────────────────────────────────────────────────────

// DocumentsUploadedTotal counts documents stored on cases.
var DocumentsUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_uploaded_total",
		Help:      "Total number of documents uploaded to cases.",
	},
)

// ── Seeder metrics ────────────────────────────────────────────────────────────

// CollectionsSeededTotal counts collections populated by the demo seeder.
var CollectionsSeededTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collections_seeded_total",
		Help:      "Total number of collections populated with demo data at startup.",
	},
)
