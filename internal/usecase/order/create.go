package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	orderdto "github.com/Quadr1on/mantrigamugil/internal/usecase/dto/order"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// generateReceiptID mints a globally unique receipt for the gateway order:
// timestamp plus random suffix to avoid collisions across instances.
func generateReceiptID() string {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return fmt.Sprintf("receipt_%d_%s", time.Now().UnixMilli(), uuid.New().String()[:13])
	}
	return fmt.Sprintf("receipt_%d_%s", time.Now().UnixMilli(), idGenerator())
}

// normalizeBuyer trims every field and lower-cases the email. Returns the
// first missing field, if any.
func normalizeBuyer(buyer *orderdto.BuyerParams) string {
	buyer.FullName = strings.TrimSpace(buyer.FullName)
	buyer.Email = strings.ToLower(strings.TrimSpace(buyer.Email))
	buyer.Phone = strings.TrimSpace(buyer.Phone)
	buyer.Address = strings.TrimSpace(buyer.Address)
	buyer.City = strings.TrimSpace(buyer.City)
	buyer.State = strings.TrimSpace(buyer.State)
	buyer.Pincode = strings.TrimSpace(buyer.Pincode)

	required := []struct {
		field string
		value string
	}{
		{"fullName", buyer.FullName},
		{"email", buyer.Email},
		{"phone", buyer.Phone},
		{"address", buyer.Address},
		{"city", buyer.City},
		{"state", buyer.State},
		{"pincode", buyer.Pincode},
	}
	for _, r := range required {
		if r.value == "" {
			return r.field
		}
	}
	return ""
}

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error) {
	// Validation happens before any external call
	if missing := normalizeBuyer(&input.BuyerParams); missing != "" {
		uc.recordError("validation")
		return nil, domain.NewValidationError(missing, "Missing field: "+missing)
	}
	if input.Quantity < 1 {
		uc.recordError("validation")
		return nil, domain.NewValidationError("quantity", "quantity must be a positive integer")
	}

	// Total is always recomputed from server-side constants
	totalAmount := uc.Pricing.BookPrice*float64(input.Quantity) + uc.Pricing.ShippingCost

	receipt := generateReceiptID()
	gatewayStart := time.Now()
	gatewayOrder, err := uc.Gateway.CreateOrder(ctx, &domain.GatewayOrderRequest{
		Amount:   int64(totalAmount * 100),
		Currency: uc.Pricing.Currency,
		Receipt:  receipt,
		Notes: map[string]string{
			"customer_name":  input.FullName,
			"customer_email": input.Email,
			"book_title":     uc.Pricing.BookTitle,
			"quantity":       strconv.Itoa(input.Quantity),
		},
	})
	if uc.Metrics != nil {
		uc.Metrics.RecordGatewayRequestDuration("create_order", time.Since(gatewayStart).Seconds(), err == nil)
	}
	if err != nil {
		uc.recordError("gateway")
		return nil, err
	}

	now := time.Now()
	order := &domain.Order{
		ID: uuid.New().String(),
		BuyerInfo: domain.BuyerInfo{
			FullName: input.FullName,
			Email:    input.Email,
			Phone:    input.Phone,
			Address:  input.Address,
			City:     input.City,
			State:    input.State,
			Pincode:  input.Pincode,
		},
		AmountInfo: domain.AmountInfo{
			Quantity:     input.Quantity,
			BookPrice:    uc.Pricing.BookPrice,
			ShippingCost: uc.Pricing.ShippingCost,
			TotalAmount:  totalAmount,
			Currency:     uc.Pricing.Currency,
		},
		PaymentInfo: domain.PaymentInfo{
			Status:         domain.PaymentPending,
			GatewayOrderID: gatewayOrder.ID,
		},
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		// The gateway order now exists with no local row. Record it so
		// reconciliation can find it; this is not retried automatically.
		uc.recordError("persistence")
		slog.Error("orphaned gateway order: db insert failed after gateway create",
			"gateway_order_id", gatewayOrder.ID,
			"receipt", receipt,
			"error", err.Error())
		if uc.OrphanLogger != nil {
			if logErr := uc.OrphanLogger.LogOrphanOrder(&domain.OrphanOrder{
				ID:             uuid.New().String(),
				GatewayOrderID: gatewayOrder.ID,
				Receipt:        receipt,
				Email:          input.Email,
				TotalAmount:    totalAmount,
				Currency:       uc.Pricing.Currency,
				ErrorMessage:   err.Error(),
				CreatedAt:      now,
			}); logErr != nil {
				slog.Error("failed to log orphaned gateway order", "error", logErr.Error())
			}
		}
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	uc.recordOrderCreatedMetrics(order)
	uc.publishOrderEvent(order, "created", false)

	return &orderdto.CreateOrderOutput{
		OrderID:        order.ID,
		GatewayOrderID: gatewayOrder.ID,
		Amount:         totalAmount,
		Currency:       uc.Pricing.Currency,
		CustomerName:   input.FullName,
		CustomerEmail:  input.Email,
		CustomerPhone:  input.Phone,
	}, nil
}
