package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	orderdto "github.com/Quadr1on/mantrigamugil/internal/usecase/dto/order"
)

type gatewayResponsePayload struct {
	GatewayOrderID   string `json:"razorpay_order_id"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
	GatewaySignature string `json:"razorpay_signature"`
	VerifiedAt       string `json:"verified_at"`
}

// VerifyPayment validates the checkout callback signature and flips the
// matching order to captured/confirmed. The update predicate requires both
// the local id and the gateway order id, so a spoofed or mixed-up pair of
// ids never matches. Safe to retry: a second call with the same valid
// payload reports AlreadyCaptured and leaves the row untouched.
func (uc *DefaultOrderUsecase) VerifyPayment(ctx context.Context, input *orderdto.VerifyPaymentInput) (*orderdto.VerifyPaymentOutput, error) {
	if !uc.Gateway.VerifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.Signature) {
		uc.recordVerificationFailure("bad_signature")
		return nil, domain.ErrInvalidSignature
	}

	existing, err := uc.OrderRepo.GetOrderByID(input.OrderID)
	if err == nil &&
		existing.PaymentInfo.GatewayOrderID == input.GatewayOrderID &&
		existing.PaymentInfo.Status == domain.PaymentCaptured {
		return &orderdto.VerifyPaymentOutput{Order: existing, AlreadyCaptured: true}, nil
	}

	capturedAt := time.Now()
	rawResponse, _ := json.Marshal(gatewayResponsePayload{
		GatewayOrderID:   input.GatewayOrderID,
		GatewayPaymentID: input.GatewayPaymentID,
		GatewaySignature: input.Signature,
		VerifiedAt:       capturedAt.UTC().Format(time.RFC3339),
	})

	order, err := uc.OrderRepo.MarkCaptured(input.OrderID, input.GatewayOrderID, domain.Capture{
		PaymentID:   input.GatewayPaymentID,
		Signature:   input.Signature,
		RawResponse: string(rawResponse),
		CapturedAt:  capturedAt,
	})
	if err != nil {
		uc.recordVerificationFailure("update_failed")
		return nil, err
	}

	uc.recordPaymentCapturedMetrics(order)
	uc.publishOrderEvent(order, "captured", false)

	return &orderdto.VerifyPaymentOutput{Order: order}, nil
}
