package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Quadr1on/mantrigamugil/internal/delivery/http/dto/order/response"
	"github.com/Quadr1on/mantrigamugil/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, response.ErrorResponse{Error: msg})
}

// writeDomainError maps usecase errors onto HTTP statuses. Unknown errors
// become a generic 500 so internals never leak to the caller.
func writeDomainError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrInvalidSignature):
		writeError(w, http.StatusBadRequest, "Invalid payment signature")
	case errors.Is(err, domain.ErrInvalidOrderIDFormat):
		writeError(w, http.StatusBadRequest, "Invalid order id format")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "Invalid order status transition")
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrGatewayUnavailable):
		writeError(w, http.StatusBadGateway, "Payment gateway call failed")
	default:
		slog.Error("unhandled error", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
