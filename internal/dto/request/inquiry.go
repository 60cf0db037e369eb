package request

type CreateInquiryRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=150"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone,omitempty"`
	Country    *string `json:"country,omitempty" validate:"omitempty,len=2"`
	PackageID  string  `json:"package_id,omitempty" validate:"omitempty,uuid"`
	TravelDate *string `json:"travel_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Message    string  `json:"message" validate:"required,min=5,max=5000"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW READ RESPONDED CLOSED"`
}
