package request

type UpsertSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

type UpdateGalleryRequest struct {
	Images []string `json:"images" validate:"required,dive,url"`
}

type UpdateVideosRequest struct {
	Links []string `json:"links" validate:"required,dive,url"`
}
