package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics covers the checkout lifecycle: creation, capture,
// forced recovery and the failure paths around them.
type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	PaymentsCapturedTotal       prometheus.CounterVec
	PaymentsCapturedAmountTotal prometheus.CounterVec

	OrdersForcedCapturedTotal prometheus.Counter

	VerificationFailuresTotal prometheus.CounterVec

	OrderStatusGauge prometheus.GaugeVec

	GatewayRequestDuration prometheus.HistogramVec

	OrderErrorsTotal prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of orders created",
			},
			[]string{"currency"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total amount of created orders",
			},
			[]string{"currency"},
		),

		PaymentsCapturedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_captured_total",
				Help: "Total number of captured payments",
			},
			[]string{"currency"},
		),

		PaymentsCapturedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_captured_amount_total",
				Help: "Total amount of captured payments",
			},
			[]string{"currency"},
		),

		OrdersForcedCapturedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_forced_captured_total",
				Help: "Total number of manually forced captures",
			},
		),

		VerificationFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_verification_failures_total",
				Help: "Total number of rejected payment verifications",
			},
			[]string{"reason"},
		),

		OrderStatusGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "orders_by_status",
				Help: "Number of orders by fulfillment status",
			},
			[]string{"status"},
		),

		GatewayRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_request_duration_seconds",
				Help:    "Duration of payment gateway calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"operation", "success"},
		),

		OrderErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_errors_total",
				Help: "Total number of errors while creating/processing orders",
			},
			[]string{"error_type"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(currency string, amount float64) {
	m.OrdersCreatedTotal.WithLabelValues(currency).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(currency).Add(amount)
	m.OrderStatusGauge.WithLabelValues("pending").Inc()
}

func (m *OrderMetrics) RecordPaymentCaptured(currency string, amount float64) {
	m.PaymentsCapturedTotal.WithLabelValues(currency).Inc()
	m.PaymentsCapturedAmountTotal.WithLabelValues(currency).Add(amount)
	m.OrderStatusGauge.WithLabelValues("pending").Dec()
	m.OrderStatusGauge.WithLabelValues("confirmed").Inc()
}

func (m *OrderMetrics) RecordForcedCapture() {
	m.OrdersForcedCapturedTotal.Inc()
}

func (m *OrderMetrics) RecordVerificationFailure(reason string) {
	m.VerificationFailuresTotal.WithLabelValues(reason).Inc()
}

func (m *OrderMetrics) RecordGatewayRequestDuration(operation string, durationSeconds float64, success bool) {
	successStr := "false"
	if success {
		successStr = "true"
	}
	m.GatewayRequestDuration.WithLabelValues(operation, successStr).Observe(durationSeconds)
}

func (m *OrderMetrics) RecordStatusAdvance(from, to string) {
	m.OrderStatusGauge.WithLabelValues(from).Dec()
	m.OrderStatusGauge.WithLabelValues(to).Inc()
}

func (m *OrderMetrics) RecordError(errorType string) {
	m.OrderErrorsTotal.WithLabelValues(errorType).Inc()
}
