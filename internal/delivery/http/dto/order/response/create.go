package response

type CreateOrderResponse struct {
	Success         bool            `json:"success"`
	OrderID         string          `json:"orderId"`
	RazorpayOrderID string          `json:"razorpayOrderId"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

type CustomerDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}
