package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Payment records one attempt against the gateway. Created PENDING at
// initiation, updated at most once more by reconciliation.
type Payment struct {
	Base
	BookingID   uuid.UUID     `db:"booking_id"`
	Amount      float64       `db:"amount"`
	Currency    string        `db:"currency"`
	Status      PaymentStatus `db:"status"`
	TrackingID  *string       `db:"tracking_id"`  // gateway-issued
	MerchantRef string        `db:"merchant_ref"` // ours
	Method      *string       `db:"method"`
	PaidAt      *time.Time    `db:"paid_at"`
}
