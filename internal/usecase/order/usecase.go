package usecase

import (
	"context"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	publisher "github.com/Quadr1on/mantrigamugil/internal/infrastructure/kafka"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/metrics"
	orderdto "github.com/Quadr1on/mantrigamugil/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error)
	VerifyPayment(ctx context.Context, input *orderdto.VerifyPaymentInput) (*orderdto.VerifyPaymentOutput, error)

	ForceCapture(ctx context.Context, input *orderdto.ForceCaptureInput) (*domain.Order, error)

	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrderByGatewayOrderID(gatewayOrderID string) (*domain.Order, error)
	ListRecentOrders(limit int) ([]*domain.Order, error)

	ListAllOrders() ([]*domain.Order, error)
	AdvanceStatus(orderID string, next domain.OrderStatus) (*domain.Order, error)
}

// EventPublisher is what the usecase needs from the kafka layer; tests
// substitute a fake.
type EventPublisher interface {
	PublishOrder(event publisher.OrderEvent) error
}

// Pricing holds the server-side constants the total is always computed
// from. Client-supplied amounts are never trusted.
type Pricing struct {
	BookPrice    float64
	ShippingCost float64
	Currency     string
	BookTitle    string
}

type DefaultOrderUsecase struct {
	OrderRepo    domain.OrderRepository
	Gateway      domain.PaymentGateway
	OrphanLogger domain.OrphanOrderLogger
	Publisher    EventPublisher
	Metrics      *metrics.OrderMetrics
	Pricing      Pricing
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	gateway domain.PaymentGateway,
	orphanLogger domain.OrphanOrderLogger,
	eventPublisher EventPublisher,
	orderMetrics *metrics.OrderMetrics,
	pricing Pricing) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:    orderRepo,
		Gateway:      gateway,
		OrphanLogger: orphanLogger,
		Publisher:    eventPublisher,
		Metrics:      orderMetrics,
		Pricing:      pricing,
	}
}
