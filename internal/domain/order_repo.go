package domain

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrderByGatewayOrderID(gatewayOrderID string) (*Order, error)
	ListOrders(limit int) ([]*Order, error)
	// MarkCaptured flips the row matched by BOTH local id and gateway order id
	// to captured/confirmed. Zero matched rows means ErrOrderNotFound; the
	// caller never falls back to a single-field match.
	MarkCaptured(orderID, gatewayOrderID string, capture Capture) (*Order, error)
	UpdateOrderStatus(orderID string, newStatus OrderStatus) error
}
