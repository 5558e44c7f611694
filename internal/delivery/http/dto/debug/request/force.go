package request

// ForceCaptureRequest is the manual recovery payload. Action must be
// "mark_paid"; anything else is rejected.
type ForceCaptureRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	Action            string `json:"action"`
	Reason            string `json:"reason"`
}
