package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusInquiry   BookingStatus = "INQUIRY"
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusPaid      BookingStatus = "PAID"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Valid reports enum membership. Any status may transition to any other;
// there is deliberately no transition table.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusInquiry, BookingStatusPending, BookingStatusConfirmed,
		BookingStatusPaid, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	Base
	Reference     string        `db:"reference"`
	PackageID     *uuid.UUID    `db:"package_id"`
	CustomerName  string        `db:"customer_name"`
	CustomerEmail string        `db:"customer_email"`
	CustomerPhone *string       `db:"customer_phone"`
	Country       *string       `db:"country"`
	TravelDate    *time.Time    `db:"travel_date"`
	Travelers     int           `db:"travelers"`
	TotalAmount   *float64      `db:"total_amount"`
	Currency      string        `db:"currency"`
	Notes         *string       `db:"notes"`
	Status        BookingStatus `db:"status"`
}
