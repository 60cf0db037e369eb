package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	Reference     string               `json:"reference"`
	PackageID     *string              `json:"package_id,omitempty"`
	PackageName   string               `json:"package_name,omitempty"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	CustomerPhone *string              `json:"customer_phone,omitempty"`
	Country       *string              `json:"country,omitempty"`
	TravelDate    *string              `json:"travel_date,omitempty"`
	Travelers     int                  `json:"travelers"`
	TotalAmount   *float64             `json:"total_amount,omitempty"`
	Currency      string               `json:"currency"`
	Notes         *string              `json:"notes,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	Payment       *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converter

func BookingToResponse(booking *entity.Booking, packageName string, payment *PaymentResponse) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID.String(),
		Reference:     booking.Reference,
		PackageName:   packageName,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
		Country:       booking.Country,
		Travelers:     booking.Travelers,
		TotalAmount:   booking.TotalAmount,
		Currency:      booking.Currency,
		Notes:         booking.Notes,
		Status:        booking.Status,
		Payment:       payment,
		CreatedAt:     booking.CreatedAt,
	}

	if booking.PackageID != nil {
		packageID := booking.PackageID.String()
		resp.PackageID = &packageID
	}

	if booking.TravelDate != nil {
		travelDate := booking.TravelDate.Format("2006-01-02")
		resp.TravelDate = &travelDate
	}

	return resp
}
