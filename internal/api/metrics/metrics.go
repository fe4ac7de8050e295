// Package metrics defines and registers all custom Prometheus metrics for the
// companion API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry via promauto at
// package load; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "companion"

// InvitesCreatedTotal counts partner invites issued.
var InvitesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_created_total",
		Help:      "Total number of partner invites created.",
	},
)

// InvitesAcceptedTotal counts successful invite acceptances.
var InvitesAcceptedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invites_accepted_total",
		Help:      "Total number of partner invites successfully accepted.",
	},
)

// InviteFailuresTotal counts rejected acceptance attempts.
// Label:
//   - reason: "not_found" (missing, used or expired code) or "conflict"
//     (either side already holds an active link)
var InviteFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invite_failures_total",
		Help:      "Total number of failed invite acceptance attempts, by reason.",
	},
	[]string{"reason"},
)

// LogsCreatedTotal counts tracked log writes.
// Label:
//   - kind: "symptom", "mood" or "lifestyle"
var LogsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logs_created_total",
		Help:      "Total number of tracking logs created, by kind.",
	},
	[]string{"kind"},
)

// CarePingsTotal counts care ping processing outcomes.
// Label:
//   - result: "delivered", "skipped" or "error"
var CarePingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "care_pings_total",
		Help:      "Total number of care pings processed, by result.",
	},
	[]string{"result"},
)

// CarePingDuration measures how long a single care ping takes to process.
var CarePingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "care_ping_duration_seconds",
		Help:      "Duration of care ping processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
)

// CarePingQueueDepth tracks the number of pings waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var CarePingQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "care_ping_queue_depth",
		Help:      "Current number of care pings pending in each worker channel.",
	},
	[]string{"worker_id"},
)
