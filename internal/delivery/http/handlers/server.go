package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Quadr1on/mantrigamugil/internal/delivery/http/middleware"
	orderusecase "github.com/Quadr1on/mantrigamugil/internal/usecase/order"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	Router *mux.Router
}

func NewServer(uc orderusecase.OrderUsecase, adminToken string) *Server {
	r := mux.NewRouter()
	r.Use(recoverPanic)

	orderHandler := NewOrderHandler(uc)
	adminHandler := NewAdminHandler(uc)
	debugHandler := NewDebugHandler(uc)

	r.HandleFunc("/api/orders", orderHandler.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/payments/verify", orderHandler.VerifyPayment).Methods(http.MethodPost)

	gated := middleware.AdminToken(adminToken)

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(gated)
	admin.HandleFunc("/orders", adminHandler.ListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/status", adminHandler.AdvanceStatus).Methods(http.MethodPost)

	debug := r.PathPrefix("/api/debug").Subrouter()
	debug.Use(gated)
	debug.HandleFunc("/orders", debugHandler.GetOrders).Methods(http.MethodGet)
	debug.HandleFunc("/fix-payment", debugHandler.ForceCapture).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return &Server{Router: r}
}

// recoverPanic converts unexpected panics into a generic failure response
// instead of crashing the process.
func recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered", "path", r.URL.Path, "panic", rec)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
