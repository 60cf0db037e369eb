package request

type FAQRequest struct {
	Question string `json:"question" validate:"required,min=5,max=500"`
	Answer   string `json:"answer" validate:"required,min=1,max=5000"`
	Position int    `json:"position" validate:"min=0"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type FAQUpdateRequest struct {
	Question *string `json:"question,omitempty" validate:"omitempty,min=5,max=500"`
	Answer   *string `json:"answer,omitempty" validate:"omitempty,min=1,max=5000"`
	Position *int    `json:"position,omitempty" validate:"omitempty,min=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}
