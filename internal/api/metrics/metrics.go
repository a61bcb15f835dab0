// Package metrics defines and registers the custom Prometheus metrics of the
// MediQuix API. It is the single source of truth for metric names, labels
// and help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mediquix"

// Gate outcomes.
const (
	OutcomeAllow = "allow"
	OutcomeDeny  = "deny"
	OutcomeError = "error"
)

// ── Access gate ───────────────────────────────────────────────────────────────

// GateDecisionsTotal counts access-gate decisions.
// Labels:
//   - gate: "token" or "role"
//   - outcome: "allow", "deny" or "error"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access-gate decisions, by gate and outcome.",
	},
	[]string{"gate", "outcome"},
)

// ── Users ─────────────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts registration attempts.
// Label:
//   - result: "created" or "existing"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Camps ─────────────────────────────────────────────────────────────────────

// CampJoinsTotal counts join records created.
var CampJoinsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "camp_joins_total",
		Help:      "Total number of camp-join records created.",
	},
)

// ── Payments ──────────────────────────────────────────────────────────────────

// PaymentIntentsTotal counts payment-intent creations.
// Label:
//   - result: "created" or "failed"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intents requested, by result.",
	},
	[]string{"result"},
)
