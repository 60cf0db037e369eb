package request

type UpsertTranslationRequest struct {
	EntityType string            `json:"entity_type" validate:"required,oneof=package faq"`
	EntityID   string            `json:"entity_id" validate:"required,uuid"`
	Locale     string            `json:"locale" validate:"required,min=2,max=10"`
	Fields     map[string]string `json:"fields" validate:"required,min=1"`
}
