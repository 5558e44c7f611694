package kafka

type OrderEvent struct {
	OrderID        string  `json:"order_id"`
	GatewayOrderID string  `json:"gateway_order_id"`
	OrderStatus    string  `json:"order_status"`
	PaymentStatus  string  `json:"payment_status"`
	TotalAmount    float64 `json:"total_amount"`
	Currency       string  `json:"currency"`
	ManuallyForced bool    `json:"manually_forced,omitempty"`
}
