package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentCaptured PaymentStatus = "captured"
)

// nextStatus defines the only legal fulfillment transitions.
// Forward-only: pending -> confirmed -> shipped.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusShipped,
}

func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	return nextStatus[s] == next
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusShipped:
		return OrderStatus(s), true
	}
	return "", false
}

type Order struct {
	ID          string
	BuyerInfo   BuyerInfo
	AmountInfo  AmountInfo
	PaymentInfo PaymentInfo
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BuyerInfo struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	Pincode  string
}

type AmountInfo struct {
	Quantity     int
	BookPrice    float64
	ShippingCost float64
	TotalAmount  float64
	Currency     string
}

type PaymentInfo struct {
	Status           PaymentStatus
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	// GatewayResponse holds the raw callback payload as JSON. For manually
	// forced captures it carries the manual_fix marker and audit fields.
	GatewayResponse string
	CapturedAt      *time.Time
}

// Capture is the set of fields written together when a payment
// transitions to captured. A captured row always has all of them.
type Capture struct {
	PaymentID   string
	Signature   string
	RawResponse string
	CapturedAt  time.Time
}
