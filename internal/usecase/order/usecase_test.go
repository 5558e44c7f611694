package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/razorpay"
)

const testSecret = "test_key_secret"

// fakeOrderRepo is the in-memory store substitute the data-access port
// exists for.
type fakeOrderRepo struct {
	orders    map[string]*domain.Order
	createErr error
	getCalls  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.getCalls++
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) GetOrderByGatewayOrderID(gatewayOrderID string) (*domain.Order, error) {
	r.getCalls++
	for _, o := range r.orders {
		if o.PaymentInfo.GatewayOrderID == gatewayOrderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *fakeOrderRepo) ListOrders(limit int) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) MarkCaptured(orderID, gatewayOrderID string, capture domain.Capture) (*domain.Order, error) {
	o, ok := r.orders[orderID]
	if !ok || o.PaymentInfo.GatewayOrderID != gatewayOrderID {
		return nil, domain.ErrOrderNotFound
	}
	o.PaymentInfo.Status = domain.PaymentCaptured
	o.Status = domain.StatusConfirmed
	o.PaymentInfo.GatewayPaymentID = capture.PaymentID
	o.PaymentInfo.GatewaySignature = capture.Signature
	o.PaymentInfo.GatewayResponse = capture.RawResponse
	capturedAt := capture.CapturedAt
	o.PaymentInfo.CapturedAt = &capturedAt
	o.UpdatedAt = time.Now()
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = newStatus
	return nil
}

type fakeGateway struct {
	createCalls int
	createErr   error
	nextOrderID string
	lastRequest *domain.GatewayOrderRequest
}

func (g *fakeGateway) CreateOrder(_ context.Context, req *domain.GatewayOrderRequest) (*domain.GatewayOrder, error) {
	g.createCalls++
	g.lastRequest = req
	if g.createErr != nil {
		return nil, g.createErr
	}
	id := g.nextOrderID
	if id == "" {
		id = "order_ABC"
	}
	return &domain.GatewayOrder{
		ID:       id,
		Receipt:  req.Receipt,
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return razorpay.VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature, testSecret)
}

type fakeOrphanLogger struct {
	orphans []*domain.OrphanOrder
	logErr  error
}

func (l *fakeOrphanLogger) LogOrphanOrder(orphan *domain.OrphanOrder) error {
	if l.logErr != nil {
		return l.logErr
	}
	l.orphans = append(l.orphans, orphan)
	return nil
}

var errBoom = errors.New("boom")

func newTestUsecase(repo *fakeOrderRepo, gateway *fakeGateway, orphans *fakeOrphanLogger) *DefaultOrderUsecase {
	return NewDefaultOrderUsecase(repo, gateway, orphans, nil, nil, Pricing{
		BookPrice:    350,
		ShippingCost: 50,
		Currency:     "INR",
		BookTitle:    "മാത്രുതികമുകിൽ",
	})
}
