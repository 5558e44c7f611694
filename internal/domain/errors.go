package domain

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidSignature     = errors.New("invalid payment signature")
	ErrAlreadyCaptured      = errors.New("payment already captured")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrInvalidOrderIDFormat = errors.New("invalid order id format")
	ErrGatewayUnavailable   = errors.New("payment gateway call failed")
)

// ValidationError reports a rejected buyer input field before any
// external call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
