package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type PackageResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Summary      *string   `json:"summary,omitempty"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	DurationDays int       `json:"duration_days"`
	Images       []string  `json:"images"`
	Highlights   []string  `json:"highlights"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type PackageDetailResponse struct {
	PackageResponse
	Description *string    `json:"description,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Helper converters

func PackageToResponse(pkg *entity.TourPackage) PackageResponse {
	return PackageResponse{
		ID:           pkg.ID.String(),
		Type:         string(pkg.Type),
		Name:         pkg.Name,
		Slug:         pkg.Slug,
		Summary:      pkg.Summary,
		Price:        pkg.Price,
		Currency:     pkg.Currency,
		DurationDays: pkg.DurationDays,
		Images:       pkg.Images,
		Highlights:   pkg.Highlights,
		IsActive:     pkg.IsActive,
		CreatedAt:    pkg.CreatedAt,
	}
}

func PackageToDetailResponse(pkg *entity.TourPackage) PackageDetailResponse {
	return PackageDetailResponse{
		PackageResponse: PackageToResponse(pkg),
		Description:     pkg.Description,
		UpdatedAt:       &pkg.UpdatedAt,
	}
}
