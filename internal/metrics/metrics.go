// Package metrics exposes Prometheus counters for booking outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeBooked      = "booked"
	OutcomeRescheduled = "rescheduled"
	OutcomeCancelled   = "cancelled"
	OutcomeRejected    = "rejected"
	OutcomeError       = "error"
)

var bookingOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dental_booking_outcomes_total",
		Help: "Booking lifecycle outcomes by result.",
	},
	[]string{"operation", "outcome"},
)

// RecordBooking counts one booking lifecycle outcome.
func RecordBooking(operation, outcome string) {
	bookingOutcomes.WithLabelValues(operation, outcome).Inc()
}
