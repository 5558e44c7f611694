package request

// CreateOrderRequest mirrors what the storefront billing form submits. Any
// client-supplied amount is deliberately absent: the server computes it.
type CreateOrderRequest struct {
	OrderData OrderData `json:"orderData"`
}

type OrderData struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Quantity int    `json:"quantity"`
}
