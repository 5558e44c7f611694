package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	orderdto "github.com/Quadr1on/mantrigamugil/internal/usecase/dto/order"
	"github.com/google/uuid"
)

type manualFixPayload struct {
	ManualFix              bool   `json:"manual_fix"`
	ForcedBy               string `json:"forced_by,omitempty"`
	Reason                 string `json:"reason,omitempty"`
	FixedAt                string `json:"fixed_at"`
	OriginalGatewayOrderID string `json:"original_gateway_order_id"`
}

// ForceCapture marks an order paid without a signature check. It exists for
// the case where the gateway dashboard shows the funds but the callback
// never arrived. The stored payload carries the manual_fix marker plus who
// forced it and when, so these rows stay distinguishable from
// gateway-verified captures.
func (uc *DefaultOrderUsecase) ForceCapture(ctx context.Context, input *orderdto.ForceCaptureInput) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByGatewayOrderID(input.GatewayOrderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentInfo.Status == domain.PaymentCaptured {
		return order, domain.ErrAlreadyCaptured
	}

	fixedAt := time.Now()
	paymentID := input.GatewayPaymentID
	if paymentID == "" {
		paymentID = fmt.Sprintf("manual_fix_%d", fixedAt.UnixMilli())
	}

	rawResponse, _ := json.Marshal(manualFixPayload{
		ManualFix:              true,
		ForcedBy:               input.ForcedBy,
		Reason:                 input.Reason,
		FixedAt:                fixedAt.UTC().Format(time.RFC3339),
		OriginalGatewayOrderID: input.GatewayOrderID,
	})

	updated, err := uc.OrderRepo.MarkCaptured(order.ID, input.GatewayOrderID, domain.Capture{
		PaymentID:   paymentID,
		RawResponse: string(rawResponse),
		CapturedAt:  fixedAt,
	})
	if err != nil {
		return nil, err
	}

	slog.Warn("order manually marked as paid",
		"order_id", updated.ID,
		"gateway_order_id", input.GatewayOrderID,
		"forced_by", input.ForcedBy)
	if uc.Metrics != nil {
		uc.Metrics.RecordForcedCapture()
	}
	uc.publishOrderEvent(updated, "forced_capture", true)

	return updated, nil
}

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		// Malformed ids are rejected before the store is touched
		return nil, domain.ErrInvalidOrderIDFormat
	}
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrderByGatewayOrderID(gatewayOrderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByGatewayOrderID(gatewayOrderID)
}

func (uc *DefaultOrderUsecase) ListRecentOrders(limit int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 10
	}
	return uc.OrderRepo.ListOrders(limit)
}
