package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type InquiryResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      *string              `json:"phone,omitempty"`
	Country    *string              `json:"country,omitempty"`
	PackageID  *string              `json:"package_id,omitempty"`
	TravelDate *string              `json:"travel_date,omitempty"`
	Message    string               `json:"message"`
	Status     entity.InquiryStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

// Helper converter

func InquiryToResponse(inquiry *entity.Inquiry) InquiryResponse {
	resp := InquiryResponse{
		ID:        inquiry.ID.String(),
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Phone:     inquiry.Phone,
		Country:   inquiry.Country,
		Message:   inquiry.Message,
		Status:    inquiry.Status,
		CreatedAt: inquiry.CreatedAt,
	}

	if inquiry.PackageID != nil {
		packageID := inquiry.PackageID.String()
		resp.PackageID = &packageID
	}

	if inquiry.TravelDate != nil {
		travelDate := inquiry.TravelDate.Format("2006-01-02")
		resp.TravelDate = &travelDate
	}

	return resp
}
