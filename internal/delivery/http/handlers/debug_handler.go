package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	debugrequest "github.com/Quadr1on/mantrigamugil/internal/delivery/http/dto/debug/request"
	"github.com/Quadr1on/mantrigamugil/internal/delivery/http/dto/order/response"
	"github.com/Quadr1on/mantrigamugil/internal/domain"
	orderusecase "github.com/Quadr1on/mantrigamugil/internal/usecase/order"
	orderdto "github.com/Quadr1on/mantrigamugil/internal/usecase/dto/order"
)

// DebugHandler exposes the reconciliation surface: out-of-band lookups and
// the forced-capture recovery path. The whole router sits behind the admin
// token middleware.
type DebugHandler struct {
	uc orderusecase.OrderUsecase
}

func NewDebugHandler(uc orderusecase.OrderUsecase) *DebugHandler {
	return &DebugHandler{uc: uc}
}

// GetOrders handles GET /api/debug/orders?orderId=...&razorpayOrderId=...
// With no query parameters it returns the most recent orders.
func (h *DebugHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("orderId")
	gatewayOrderID := r.URL.Query().Get("razorpayOrderId")

	if gatewayOrderID != "" {
		order, err := h.uc.GetOrderByGatewayOrderID(gatewayOrderID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, response.OrdersResponse{
			Orders: []response.Order{response.FromDomainOrder(order)},
			Count:  1,
		})
		return
	}

	if orderID != "" {
		order, err := h.uc.GetOrderByID(orderID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, response.OrdersResponse{
			Orders: []response.Order{response.FromDomainOrder(order)},
			Count:  1,
		})
		return
	}

	orders, err := h.uc.ListRecentOrders(10)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.OrdersResponse{
		Orders: response.FromDomainOrders(orders),
		Count:  len(orders),
	})
}

// ForceCapture handles POST /api/debug/fix-payment.
func (h *DebugHandler) ForceCapture(w http.ResponseWriter, r *http.Request) {
	var req debugrequest.ForceCaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.RazorpayOrderID == "" {
		writeError(w, http.StatusBadRequest, "razorpayOrderId required")
		return
	}
	if req.Action != "mark_paid" {
		writeError(w, http.StatusBadRequest, "Invalid action. Use 'mark_paid'")
		return
	}

	order, err := h.uc.ForceCapture(r.Context(), &orderdto.ForceCaptureInput{
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		ForcedBy:         r.Header.Get("X-Admin-User"),
		Reason:           req.Reason,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCaptured) {
			writeJSON(w, http.StatusOK, response.VerifyPaymentResponse{
				Success: true,
				Message: "Order already marked as paid",
				Order:   response.FromDomainOrder(order),
			})
			return
		}
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.VerifyPaymentResponse{
		Success: true,
		Message: "Order marked as paid successfully",
		Order:   response.FromDomainOrder(order),
	})
}
