package usecase

import (
	"log/slog"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	publisher "github.com/Quadr1on/mantrigamugil/internal/infrastructure/kafka"
)

// publishOrderEvent sends the lifecycle event best-effort; delivery
// failures are logged, never surfaced to the buyer.
func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order, stage string, forced bool) {
	if uc.Publisher == nil {
		return
	}

	go func(event publisher.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish kafka OrderEvent", "stage", stage, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:        order.ID,
		GatewayOrderID: order.PaymentInfo.GatewayOrderID,
		OrderStatus:    string(order.Status),
		PaymentStatus:  string(order.PaymentInfo.Status),
		TotalAmount:    order.AmountInfo.TotalAmount,
		Currency:       order.AmountInfo.Currency,
		ManuallyForced: forced,
	})
}

func (uc *DefaultOrderUsecase) recordOrderCreatedMetrics(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderCreated(order.AmountInfo.Currency, order.AmountInfo.TotalAmount)
}

func (uc *DefaultOrderUsecase) recordPaymentCapturedMetrics(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPaymentCaptured(order.AmountInfo.Currency, order.AmountInfo.TotalAmount)
}

func (uc *DefaultOrderUsecase) recordVerificationFailure(reason string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordVerificationFailure(reason)
}

func (uc *DefaultOrderUsecase) recordError(errorType string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordError(errorType)
}
