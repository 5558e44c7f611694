package domain

import "context"

// GatewayOrder is the order object minted on the payment processor's side,
// referenced by its own id, distinct from the local order id.
type GatewayOrder struct {
	ID       string
	Receipt  string
	Amount   int64 // smallest currency unit (paise)
	Currency string
	Status   string
}

type GatewayOrderRequest struct {
	Amount   int64 // smallest currency unit (paise)
	Currency string
	Receipt  string
	Notes    map[string]string
}

type PaymentGateway interface {
	CreateOrder(ctx context.Context, req *GatewayOrderRequest) (*GatewayOrder, error)
	// VerifySignature recomputes the gateway's HMAC over
	// "<gatewayOrderID>|<gatewayPaymentID>" and compares it to signature.
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}
