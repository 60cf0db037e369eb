package request

type PackageRequest struct {
	Type         string   `json:"type" validate:"required,oneof=SAFARI MOUNTAIN BEACH DAY_TRIP"`
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	Slug         string   `json:"slug,omitempty" validate:"omitempty,min=1,max=200"`
	Summary      *string  `json:"summary,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Currency     string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	DurationDays int      `json:"duration_days" validate:"required,min=1,max=60"`
	Images       []string `json:"images,omitempty" validate:"dive,url"`
	Highlights   []string `json:"highlights,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type PackageUpdateRequest struct {
	Type         *string  `json:"type,omitempty" validate:"omitempty,oneof=SAFARI MOUNTAIN BEACH DAY_TRIP"`
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Slug         *string  `json:"slug,omitempty" validate:"omitempty,min=1,max=200"`
	Summary      *string  `json:"summary,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Currency     *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	DurationDays *int     `json:"duration_days,omitempty" validate:"omitempty,min=1,max=60"`
	Images       []string `json:"images,omitempty" validate:"dive,url"`
	Highlights   []string `json:"highlights,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}
