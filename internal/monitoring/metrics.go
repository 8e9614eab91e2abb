package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_created_total",
			Help: "Total number of tickets created",
		},
	)

	paymentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_created_total",
			Help: "Total number of payments accepted",
		},
	)

	paymentsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_rejected_total",
			Help: "Total number of payments rejected, by reason",
		},
		[]string{"reason"},
	)
)

func TicketCreated() {
	ticketsCreated.Inc()
}

func PaymentCreated() {
	paymentsCreated.Inc()
}

func PaymentRejected(reason string) {
	paymentsRejected.WithLabelValues(reason).Inc()
}
