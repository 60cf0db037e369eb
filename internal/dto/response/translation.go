package response

import (
	"tour-booking/internal/data/entity"
)

type TranslationResponse struct {
	ID         string            `json:"id"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Locale     string            `json:"locale"`
	Fields     map[string]string `json:"fields"`
}

// Helper converter

func TranslationToResponse(translation *entity.Translation) TranslationResponse {
	return TranslationResponse{
		ID:         translation.ID.String(),
		EntityType: string(translation.EntityType),
		EntityID:   translation.EntityID.String(),
		Locale:     translation.Locale,
		Fields:     translation.Fields,
	}
}
