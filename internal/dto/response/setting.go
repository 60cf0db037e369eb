package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GalleryResponse struct {
	Images []string `json:"images"`
}

type VideosResponse struct {
	Links []string `json:"links"`
}

// Helper converter

func SettingToResponse(setting *entity.Setting) SettingResponse {
	return SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}
}
