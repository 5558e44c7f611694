package mappers

import (
	"github.com/Quadr1on/mantrigamugil/internal/domain"
	"github.com/Quadr1on/mantrigamugil/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID: model.ID,
		BuyerInfo: domain.BuyerInfo{
			FullName: model.FullName,
			Email:    model.Email,
			Phone:    model.Phone,
			Address:  model.Address,
			City:     model.City,
			State:    model.State,
			Pincode:  model.Pincode,
		},
		AmountInfo: domain.AmountInfo{
			Quantity:     model.Quantity,
			BookPrice:    model.BookPrice,
			ShippingCost: model.ShippingCost,
			TotalAmount:  model.TotalAmount,
			Currency:     model.Currency,
		},
		PaymentInfo: domain.PaymentInfo{
			Status:           model.PaymentStatus,
			GatewayOrderID:   model.GatewayOrderID,
			GatewayPaymentID: model.GatewayPaymentID,
			GatewaySignature: model.GatewaySignature,
			GatewayResponse:  model.GatewayResponse,
			CapturedAt:       model.CapturedAt,
		},
		Status:    model.OrderStatus,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:               order.ID,
		FullName:         order.BuyerInfo.FullName,
		Email:            order.BuyerInfo.Email,
		Phone:            order.BuyerInfo.Phone,
		Address:          order.BuyerInfo.Address,
		City:             order.BuyerInfo.City,
		State:            order.BuyerInfo.State,
		Pincode:          order.BuyerInfo.Pincode,
		Quantity:         order.AmountInfo.Quantity,
		BookPrice:        order.AmountInfo.BookPrice,
		ShippingCost:     order.AmountInfo.ShippingCost,
		TotalAmount:      order.AmountInfo.TotalAmount,
		Currency:         order.AmountInfo.Currency,
		OrderStatus:      order.Status,
		PaymentStatus:    order.PaymentInfo.Status,
		GatewayOrderID:   order.PaymentInfo.GatewayOrderID,
		GatewayPaymentID: order.PaymentInfo.GatewayPaymentID,
		GatewaySignature: order.PaymentInfo.GatewaySignature,
		GatewayResponse:  order.PaymentInfo.GatewayResponse,
		CapturedAt:       order.PaymentInfo.CapturedAt,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}
