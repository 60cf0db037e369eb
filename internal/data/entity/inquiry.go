package entity

import (
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "NEW"
	InquiryStatusRead      InquiryStatus = "READ"
	InquiryStatusResponded InquiryStatus = "RESPONDED"
	InquiryStatusClosed    InquiryStatus = "CLOSED"
)

func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusResponded, InquiryStatusClosed:
		return true
	}
	return false
}

type Inquiry struct {
	Base
	Name       string        `db:"name"`
	Email      string        `db:"email"`
	Phone      *string       `db:"phone"`
	Country    *string       `db:"country"`
	PackageID  *uuid.UUID    `db:"package_id"`
	TravelDate *time.Time    `db:"travel_date"`
	Message    string        `db:"message"`
	Status     InquiryStatus `db:"status"`
}
