package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/postgres/mappers"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrderByGatewayOrderID(gatewayOrderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "gateway_order_id = ?", gatewayOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) ListOrders(limit int) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	query := r.DB.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}

	return orders, nil
}

// MarkCaptured is a deterministic overwrite to terminal field values, so
// racing retries of the same callback are harmless.
func (r *DefaultOrderRepository) MarkCaptured(orderID, gatewayOrderID string, capture domain.Capture) (*domain.Order, error) {
	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND gateway_order_id = ?", orderID, gatewayOrderID).
		Updates(map[string]interface{}{
			"payment_status":     domain.PaymentCaptured,
			"order_status":       domain.StatusConfirmed,
			"gateway_payment_id": capture.PaymentID,
			"gateway_signature":  capture.Signature,
			"gateway_response":   capture.RawResponse,
			"captured_at":        capture.CapturedAt,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to mark order captured: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrOrderNotFound
	}

	return r.GetOrderByID(orderID)
}

func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"order_status": newStatus,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}

	return nil
}
