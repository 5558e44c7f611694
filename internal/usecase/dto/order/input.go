package orderdto

type CreateOrderInput struct {
	BuyerParams
	Quantity int
}

type BuyerParams struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	Pincode  string
}

type VerifyPaymentInput struct {
	OrderID          string
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

type ForceCaptureInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	ForcedBy         string
	Reason           string
}
