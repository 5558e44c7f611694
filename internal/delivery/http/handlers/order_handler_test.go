package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Quadr1on/mantrigamugil/internal/delivery/http/dto/order/response"
	"github.com/Quadr1on/mantrigamugil/internal/domain"
)

func doJSON(t *testing.T, srv *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "valid order",
			body:     `{"orderData":{"fullName":"Anand P","email":"anand@example.com","phone":"9999999999","address":"12 Beach Road","city":"Kochi","state":"Kerala","pincode":"682001","quantity":2}}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "missing email",
			body:     `{"orderData":{"fullName":"Anand P","phone":"9999999999","address":"12 Beach Road","city":"Kochi","state":"Kerala","pincode":"682001","quantity":1}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "zero quantity",
			body:     `{"orderData":{"fullName":"Anand P","email":"anand@example.com","phone":"9999999999","address":"12 Beach Road","city":"Kochi","state":"Kerala","pincode":"682001","quantity":0}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed body",
			body:     `{"orderData":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(newMemOrderRepo(), &stubGateway{})
			w := doJSON(t, srv, http.MethodPost, "/api/orders", tt.body, nil)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}
		})
	}
}

func TestCreateOrderIgnoresClientAmount(t *testing.T) {
	srv := newTestServer(newMemOrderRepo(), &stubGateway{})

	// A client-supplied amount must never be trusted
	body := `{"orderData":{"fullName":"Anand P","email":"anand@example.com","phone":"9999999999","address":"12 Beach Road","city":"Kochi","state":"Kerala","pincode":"682001","quantity":2,"amount":1},"amount":1}`
	w := doJSON(t, srv, http.MethodPost, "/api/orders", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp response.CreateOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Amount != 750 {
		t.Errorf("amount = %v, want 750", resp.Amount)
	}
	if resp.Currency != "INR" {
		t.Errorf("currency = %v, want INR", resp.Currency)
	}
	if resp.RazorpayOrderID == "" || resp.OrderID == "" {
		t.Error("response missing order ids")
	}
}

func TestVerifyPaymentEndpoint(t *testing.T) {
	repo := newMemOrderRepo()
	srv := newTestServer(repo, &stubGateway{nextOrderID: "order_ABC"})

	createBody := `{"orderData":{"fullName":"Anand P","email":"anand@example.com","phone":"9999999999","address":"12 Beach Road","city":"Kochi","state":"Kerala","pincode":"682001","quantity":1}}`
	w := doJSON(t, srv, http.MethodPost, "/api/orders", createBody, nil)
	var created response.CreateOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	verifyBody := `{"razorpay_order_id":"order_ABC","razorpay_payment_id":"pay_XYZ","razorpay_signature":"` +
		sign("order_ABC", "pay_XYZ") + `","orderId":"` + created.OrderID + `"}`
	w = doJSON(t, srv, http.MethodPost, "/api/payments/verify", verifyBody, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify status = %d, body %s", w.Code, w.Body.String())
	}

	var verified response.VerifyPaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &verified); err != nil {
		t.Fatalf("decode verify response: %v", err)
	}
	if verified.Order.PaymentStatus != string(domain.PaymentCaptured) {
		t.Errorf("payment status = %v, want captured", verified.Order.PaymentStatus)
	}
	if verified.Order.OrderStatus != string(domain.StatusConfirmed) {
		t.Errorf("order status = %v, want confirmed", verified.Order.OrderStatus)
	}
	if verified.Order.RazorpayPaymentID != "pay_XYZ" {
		t.Errorf("payment id = %v, want pay_XYZ", verified.Order.RazorpayPaymentID)
	}
}

func TestVerifyPaymentEndpointBadSignature(t *testing.T) {
	repo := newMemOrderRepo()
	srv := newTestServer(repo, &stubGateway{nextOrderID: "order_ABC"})

	createBody := `{"orderData":{"fullName":"Anand P","email":"anand@example.com","phone":"9999999999","address":"12 Beach Road","city":"Kochi","state":"Kerala","pincode":"682001","quantity":1}}`
	w := doJSON(t, srv, http.MethodPost, "/api/orders", createBody, nil)
	var created response.CreateOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	verifyBody := `{"razorpay_order_id":"order_ABC","razorpay_payment_id":"pay_XYZ","razorpay_signature":"deadbeef","orderId":"` + created.OrderID + `"}`
	w = doJSON(t, srv, http.MethodPost, "/api/payments/verify", verifyBody, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("verify status = %d, want 400", w.Code)
	}

	// Row must stay pending/pending
	order, _ := repo.GetOrderByID(created.OrderID)
	if order.PaymentInfo.Status != domain.PaymentPending || order.Status != domain.StatusPending {
		t.Errorf("order mutated: %v/%v", order.PaymentInfo.Status, order.Status)
	}
}

func TestVerifyPaymentEndpointUnknownOrder(t *testing.T) {
	srv := newTestServer(newMemOrderRepo(), &stubGateway{})

	verifyBody := `{"razorpay_order_id":"order_ABC","razorpay_payment_id":"pay_XYZ","razorpay_signature":"` +
		sign("order_ABC", "pay_XYZ") + `","orderId":"af0b2a8f-4f65-4a3b-9a10-1dc4c7b2ce00"}`
	w := doJSON(t, srv, http.MethodPost, "/api/payments/verify", verifyBody, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("verify status = %d, want 500", w.Code)
	}
}
