package handlers

import (
	"encoding/json"
	"net/http"

	adminrequest "github.com/Quadr1on/mantrigamugil/internal/delivery/http/dto/admin/request"
	"github.com/Quadr1on/mantrigamugil/internal/delivery/http/dto/order/response"
	"github.com/Quadr1on/mantrigamugil/internal/domain"
	orderusecase "github.com/Quadr1on/mantrigamugil/internal/usecase/order"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	uc orderusecase.OrderUsecase
}

func NewAdminHandler(uc orderusecase.OrderUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListOrders handles GET /api/admin/orders, newest first.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.uc.ListAllOrders()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.OrdersResponse{
		Orders: response.FromDomainOrders(orders),
		Count:  len(orders),
	})
}

// AdvanceStatus handles POST /api/admin/orders/{id}/status.
func (h *AdminHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req adminrequest.AdvanceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	next, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown order status")
		return
	}

	order, err := h.uc.AdvanceStatus(orderID, next)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.FromDomainOrder(order))
}
