package response

import (
	"encoding/json"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
)

type Order struct {
	ID                string          `json:"id"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Address           string          `json:"address"`
	City              string          `json:"city"`
	State             string          `json:"state"`
	Pincode           string          `json:"pincode"`
	Quantity          int             `json:"quantity"`
	BookPrice         float64         `json:"book_price"`
	ShippingCost      float64         `json:"shipping_cost"`
	TotalAmount       float64         `json:"total_amount"`
	Currency          string          `json:"currency"`
	OrderStatus       string          `json:"order_status"`
	PaymentStatus     string          `json:"payment_status"`
	RazorpayOrderID   string          `json:"razorpay_order_id"`
	RazorpayPaymentID string          `json:"razorpay_payment_id,omitempty"`
	CapturedAt        *time.Time      `json:"payment_captured_at,omitempty"`
	GatewayResponse   json.RawMessage `json:"payment_gateway_response,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromDomainOrder(o *domain.Order) Order {
	var gatewayResponse json.RawMessage
	if o.PaymentInfo.GatewayResponse != "" {
		gatewayResponse = json.RawMessage(o.PaymentInfo.GatewayResponse)
	}
	return Order{
		ID:                o.ID,
		FullName:          o.BuyerInfo.FullName,
		Email:             o.BuyerInfo.Email,
		Phone:             o.BuyerInfo.Phone,
		Address:           o.BuyerInfo.Address,
		City:              o.BuyerInfo.City,
		State:             o.BuyerInfo.State,
		Pincode:           o.BuyerInfo.Pincode,
		Quantity:          o.AmountInfo.Quantity,
		BookPrice:         o.AmountInfo.BookPrice,
		ShippingCost:      o.AmountInfo.ShippingCost,
		TotalAmount:       o.AmountInfo.TotalAmount,
		Currency:          o.AmountInfo.Currency,
		OrderStatus:       string(o.Status),
		PaymentStatus:     string(o.PaymentInfo.Status),
		RazorpayOrderID:   o.PaymentInfo.GatewayOrderID,
		RazorpayPaymentID: o.PaymentInfo.GatewayPaymentID,
		CapturedAt:        o.PaymentInfo.CapturedAt,
		GatewayResponse:   gatewayResponse,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FromDomainOrders(orders []*domain.Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = FromDomainOrder(o)
	}
	return out
}

type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
