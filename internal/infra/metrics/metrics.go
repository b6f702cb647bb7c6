// Package metrics exposes the marketplace's Prometheus collectors. Counters
// are registered at init through promauto and scraped via /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShopsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sokoo_shops_registered_total",
			Help: "Total number of shop registrations",
		},
	)

	ShopDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sokoo_shop_decisions_total",
			Help: "Total number of admin approve/reject decisions",
		},
		[]string{"decision"},
	)

	PaymentsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sokoo_payments_settled_total",
			Help: "Total number of settled payments",
		},
		[]string{"method"},
	)

	RemindersSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sokoo_reminders_sent_total",
			Help: "Total number of payment reminders by delivery outcome",
		},
		[]string{"status"},
	)

	ShopsDeactivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sokoo_shops_deactivated_total",
			Help: "Total number of shops deactivated by the overdue sweep",
		},
	)
)
