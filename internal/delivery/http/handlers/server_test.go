package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/razorpay"
	orderusecase "github.com/Quadr1on/mantrigamugil/internal/usecase/order"
)

const (
	testSecret     = "test_key_secret"
	testAdminToken = "admin-token"
)

type memOrderRepo struct {
	orders map[string]*domain.Order
	// ordered ids, newest last, so list order is deterministic
	ids      []string
	getCalls int
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *memOrderRepo) CreateOrder(order *domain.Order) error {
	cp := *order
	r.orders[order.ID] = &cp
	r.ids = append(r.ids, order.ID)
	return nil
}

func (r *memOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.getCalls++
	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) GetOrderByGatewayOrderID(gatewayOrderID string) (*domain.Order, error) {
	r.getCalls++
	for _, o := range r.orders {
		if o.PaymentInfo.GatewayOrderID == gatewayOrderID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *memOrderRepo) ListOrders(limit int) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(r.ids))
	for i := len(r.ids) - 1; i >= 0; i-- {
		cp := *r.orders[r.ids[i]]
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memOrderRepo) MarkCaptured(orderID, gatewayOrderID string, capture domain.Capture) (*domain.Order, error) {
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

func (r *memOrderRepo) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	o, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = newStatus
	return nil
}

type stubGateway struct {
	nextOrderID string
	calls       int
}

func (g *stubGateway) CreateOrder(_ context.Context, req *domain.GatewayOrderRequest) (*domain.GatewayOrder, error) {
	g.calls++
	id := g.nextOrderID
	if id == "" {
		id = "order_ABC"
	}
	return &domain.GatewayOrder{ID: id, Receipt: req.Receipt, Amount: req.Amount, Currency: req.Currency, Status: "created"}, nil
}

func (g *stubGateway) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return razorpay.VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature, testSecret)
}

type nopOrphanLogger struct{}

func (nopOrphanLogger) LogOrphanOrder(*domain.OrphanOrder) error { return nil }

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func newTestServer(repo *memOrderRepo, gateway *stubGateway) *Server {
	uc := orderusecase.NewDefaultOrderUsecase(repo, gateway, nopOrphanLogger{}, nil, nil, orderusecase.Pricing{
		BookPrice:    350,
		ShippingCost: 50,
		Currency:     "INR",
		BookTitle:    "മാത്രുതികമുകിൽ",
	})
	return NewServer(uc, testAdminToken)
}
