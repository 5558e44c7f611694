package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Quadr1on/mantrigamugil/internal/delivery/http/dto/order/request"
	"github.com/Quadr1on/mantrigamugil/internal/delivery/http/dto/order/response"
	"github.com/Quadr1on/mantrigamugil/internal/domain"
	orderusecase "github.com/Quadr1on/mantrigamugil/internal/usecase/order"
	orderdto "github.com/Quadr1on/mantrigamugil/internal/usecase/dto/order"
)

type OrderHandler struct {
	uc orderusecase.OrderUsecase
}

func NewOrderHandler(uc orderusecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.uc.CreateOrder(r.Context(), &orderdto.CreateOrderInput{
		BuyerParams: orderdto.BuyerParams{
			FullName: req.OrderData.FullName,
			Email:    req.OrderData.Email,
			Phone:    req.OrderData.Phone,
			Address:  req.OrderData.Address,
			City:     req.OrderData.City,
			State:    req.OrderData.State,
			Pincode:  req.OrderData.Pincode,
		},
		Quantity: req.OrderData.Quantity,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.CreateOrderResponse{
		Success:         true,
		OrderID:         out.OrderID,
		RazorpayOrderID: out.GatewayOrderID,
		Amount:          out.Amount,
		Currency:        out.Currency,
		CustomerDetails: response.CustomerDetails{
			Name:    out.CustomerName,
			Email:   out.CustomerEmail,
			Contact: out.CustomerPhone,
		},
	})
}

// VerifyPayment handles POST /api/payments/verify.
func (h *OrderHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.uc.VerifyPayment(r.Context(), &orderdto.VerifyPaymentInput{
		OrderID:          req.OrderID,
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		Signature:        req.RazorpaySignature,
	})
	if err != nil {
		// Zero rows matched by the combined id predicate means the update
		// failed, not that the resource is browsable-missing.
		if errors.Is(err, domain.ErrOrderNotFound) {
			writeError(w, http.StatusInternalServerError, "Failed to update order")
			return
		}
		writeDomainError(w, err)
		return
	}

	message := "Payment verified successfully"
	if out.AlreadyCaptured {
		message = "Payment already captured"
	}
	writeJSON(w, http.StatusOK, response.VerifyPaymentResponse{
		Success: true,
		Message: message,
		Order:   response.FromDomainOrder(out.Order),
	})
}
