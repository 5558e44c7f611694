package orderdto

import "github.com/Quadr1on/mantrigamugil/internal/domain"

type CreateOrderOutput struct {
	OrderID        string
	GatewayOrderID string
	Amount         float64
	Currency       string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
}

type VerifyPaymentOutput struct {
	Order *domain.Order
	// AlreadyCaptured marks a retried callback that matched an order
	// captured earlier; the row was left untouched.
	AlreadyCaptured bool
}
