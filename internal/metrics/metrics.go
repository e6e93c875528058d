// Package metrics holds the process-wide prometheus collectors of the booking flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kiddovents"

var (
	bookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Bookings persisted, by target kind.",
	}, []string{"target"})

	paymentRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_requests_total",
		Help:      "Request-to-pay attempts, by result.",
	}, []string{"result"})

	webhooks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_webhooks_total",
		Help:      "Settlement callbacks, by outcome.",
	}, []string{"outcome"})

	tickets = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_total",
		Help:      "Ticket fulfillment attempts, by result.",
	}, []string{"result"})

	gatewayLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_request_duration_seconds",
		Help:      "Latency of payment gateway calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

func BookingCreated(target string) { bookingsCreated.WithLabelValues(target).Inc() }

func PaymentRequest(result string) { paymentRequests.WithLabelValues(result).Inc() }

func Webhook(outcome string) { webhooks.WithLabelValues(outcome).Inc() }

func Ticket(result string) { tickets.WithLabelValues(result).Inc() }

func ObserveGateway(operation string, seconds float64) {
	gatewayLatency.WithLabelValues(operation).Observe(seconds)
}
