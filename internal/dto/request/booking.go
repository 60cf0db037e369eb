package request

type CreateBookingRequest struct {
	PackageID     string  `json:"package_id,omitempty" validate:"omitempty,uuid"`
	CustomerName  string  `json:"customer_name" validate:"required,min=2,max=150"`
	CustomerEmail string  `json:"customer_email" validate:"required,email"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	Country       *string `json:"country,omitempty" validate:"omitempty,len=2"`
	TravelDate    *string `json:"travel_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Travelers     int     `json:"travelers" validate:"required,min=1,max=50"`
	Notes         *string `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=INQUIRY PENDING CONFIRMED PAID CANCELLED"`
}
