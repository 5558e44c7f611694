package domain

import "time"

// OrphanOrder records a gateway-side order that exists with no local row:
// the gateway call succeeded but the database insert after it failed.
// These are never retried automatically, only followed up by hand.
type OrphanOrder struct {
	ID             string
	GatewayOrderID string
	Receipt        string
	Email          string
	TotalAmount    float64
	Currency       string
	ErrorMessage   string
	CreatedAt      time.Time
}

type OrphanOrderLogger interface {
	LogOrphanOrder(orphan *OrphanOrder) error
}
