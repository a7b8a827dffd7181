package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reservations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "capacity_reservations_total",
			Help: "Capacity ledger reservation checks by outcome",
		},
		[]string{"outcome"},
	)

	holdsOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_holds_opened_total",
			Help: "Booking holds opened (replacements included)",
		},
	)

	bookingsCommitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_committed_total",
			Help: "Bookings durably committed",
		},
	)

	ticketsCommitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_committed_total",
			Help: "Tickets across all committed bookings",
		},
	)

	confirmDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "booking_confirm_duration_seconds",
			Help:    "Duration of the confirm transaction (lock + recheck + insert)",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_notifications_total",
			Help: "Ticket issuance/notification outcomes",
		},
		[]string{"result"},
	)
)

// Reservation outcomes
const (
	OutcomeGranted = "granted"
	OutcomeDenied  = "denied"
)

// Notification results
const (
	NotifySent           = "sent"
	NotifyRenderFailed   = "render_failed"
	NotifyDeliveryFailed = "delivery_failed"
	NotifyDiscarded      = "discarded"
)

func ObserveReservation(outcome string) {
	reservations.WithLabelValues(outcome).Inc()
}

func ObserveHoldOpened() {
	holdsOpened.Inc()
}

func ObserveCommit(tickets int, elapsed time.Duration) {
	bookingsCommitted.Inc()
	ticketsCommitted.Add(float64(tickets))
	confirmDuration.Observe(elapsed.Seconds())
}

func ObserveNotification(result string) {
	notifications.WithLabelValues(result).Inc()
}
