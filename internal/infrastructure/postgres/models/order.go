package models

import (
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
)

type OrderModel struct {
	ID               string               `gorm:"primaryKey;type:uuid"`
	FullName         string               `gorm:"not null"`
	Email            string               `gorm:"not null;index:idx_email"`
	Phone            string               `gorm:"not null"`
	Address          string               `gorm:"not null"`
	City             string               `gorm:"not null"`
	State            string               `gorm:"not null"`
	Pincode          string               `gorm:"not null"`
	Quantity         int                  `gorm:"not null"`
	BookPrice        float64              `gorm:"not null"`
	ShippingCost     float64              `gorm:"not null"`
	TotalAmount      float64              `gorm:"not null"`
	Currency         string               `gorm:"not null"`
	OrderStatus      domain.OrderStatus   `gorm:"index:idx_order_status"`
	PaymentStatus    domain.PaymentStatus `gorm:"index:idx_payment_status"`
	GatewayOrderID   string               `gorm:"uniqueIndex:idx_gateway_order_id"`
	GatewayPaymentID string
	GatewaySignature string
	GatewayResponse  string `gorm:"type:jsonb"`
	CapturedAt       *time.Time
	CreatedAt        time.Time `gorm:"index:idx_created_at"`
	UpdatedAt        time.Time
}

type OrphanOrderModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	GatewayOrderID string `gorm:"index"`
	Receipt        string
	Email          string
	TotalAmount    float64
	Currency       string
	ErrorMessage   string
	CreatedAt      time.Time
}
