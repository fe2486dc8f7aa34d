// Package metrics holds the Prometheus collectors for the order flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeConfirmed = "confirmed"
	OutcomeInvalid   = "invalid"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

var (
	FieldUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tapconnect_order_field_updates_total",
		Help: "Order form field updates by field and result",
	}, []string{"field", "result"})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tapconnect_order_submissions_total",
		Help: "Order form submissions by outcome",
	}, []string{"outcome"})

	DeliveryAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tapconnect_order_delivery_attempts_total",
		Help: "Attempts to record a submitted order, including retries",
	})

	DeliveryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tapconnect_order_delivery_failures_total",
		Help: "Failed order deliveries by stage",
	}, []string{"stage"})

	SessionEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tapconnect_session_evictions_total",
		Help: "Live order forms dropped to stay under the session limit",
	})
)

// WatchSessions exports the number of live order forms, read from count on
// every scrape. Call it once per process.
func WatchSessions(count func() int) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "tapconnect_live_sessions",
		Help: "Order forms currently held in memory",
	}, func() float64 {
		return float64(count())
	})
}
