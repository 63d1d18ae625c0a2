// Package metrics defines and registers all custom Prometheus metrics for
// the club management API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register themselves with the
// default registry via promauto; the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clubmgmt"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "throttled", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SubmissionsTotal counts records entering the approval workflow.
// Label:
//   - collection: "work_hours" or "activities"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of submitted records, by collection.",
	},
	[]string{"collection"},
)

// DecisionsTotal counts approval workflow transitions.
// Labels:
//   - collection: "work_hours" or "activities"
//   - status: the status applied ("approved", "rejected", "cancelled")
var DecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decisions_total",
		Help:      "Total number of workflow transitions, by collection and resulting status.",
	},
	[]string{"collection", "status"},
)
