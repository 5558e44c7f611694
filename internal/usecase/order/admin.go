package usecase

import (
	"github.com/Quadr1on/mantrigamugil/internal/domain"
)

func (uc *DefaultOrderUsecase) ListAllOrders() ([]*domain.Order, error) {
	return uc.OrderRepo.ListOrders(0)
}

// AdvanceStatus moves the fulfillment status one step along
// pending -> confirmed -> shipped. Anything else is rejected here, not
// just in the admin UI.
func (uc *DefaultOrderUsecase) AdvanceStatus(orderID string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := uc.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanAdvanceTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	if err := uc.OrderRepo.UpdateOrderStatus(orderID, next); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordStatusAdvance(string(order.Status), string(next))
	}

	order.Status = next
	uc.publishOrderEvent(order, "status_advanced", false)

	return order, nil
}
