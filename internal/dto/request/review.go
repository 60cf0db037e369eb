package request

type ReviewRequest struct {
	Author   string `json:"author" validate:"required,min=1,max=150"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Text     string `json:"text" validate:"required,min=1,max=5000"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type ReviewUpdateRequest struct {
	Author   *string `json:"author,omitempty" validate:"omitempty,min=1,max=150"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Text     *string `json:"text,omitempty" validate:"omitempty,min=1,max=5000"`
	IsActive *bool   `json:"is_active,omitempty"`
}
