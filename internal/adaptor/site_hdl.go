package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SiteHandler serves the settings-backed site content: the gallery, the video
// links and the raw key-value store for the back office.
type SiteHandler struct {
	service usecase.SettingService
	log     *zap.Logger
}

func NewSiteHandler(service usecase.SettingService, log *zap.Logger) *SiteHandler {
	return &SiteHandler{
		service: service,
		log:     log.With(zap.String("handler", "site")),
	}
}

// GetGallery handles GET /api/gallery (public)
func (h *SiteHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	gallery, err := h.service.GetGallery(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get gallery")
		return
	}

	utils.ResponseSuccess(w, "success", gallery)
}

// GetVideos handles GET /api/videos (public)
func (h *SiteHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.service.GetVideos(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get videos")
		return
	}

	utils.ResponseSuccess(w, "success", videos)
}

// ==================== ADMIN METHODS ====================

// ListSettings handles GET /api/admin/settings (admin only)
func (h *SiteHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.ListSettings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list settings")
		return
	}

	utils.ResponseSuccess(w, "success", settings)
}

// GetSetting handles GET /api/admin/settings/{key} (admin only)
func (h *SiteHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ResponseBadRequest(w, "Setting key is required", nil)
		return
	}

	setting, err := h.service.GetSetting(r.Context(), key)
	if err != nil {
		handleServiceError(h.log, w, err, "get setting")
		return
	}

	utils.ResponseSuccess(w, "success", setting)
}

// UpsertSetting handles PUT /api/admin/settings/{key} (admin only)
func (h *SiteHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ResponseBadRequest(w, "Setting key is required", nil)
		return
	}

	var req request.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	setting, err := h.service.UpsertSetting(r.Context(), key, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "upsert setting")
		return
	}

	utils.ResponseSuccess(w, "success", setting)
}

// UpdateGallery handles PUT /api/admin/gallery (admin only)
func (h *SiteHandler) UpdateGallery(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateGalleryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	gallery, err := h.service.UpdateGallery(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update gallery")
		return
	}

	utils.ResponseSuccess(w, "success", gallery)
}

// UpdateVideos handles PUT /api/admin/videos (admin only)
func (h *SiteHandler) UpdateVideos(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateVideosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	videos, err := h.service.UpdateVideos(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update videos")
		return
	}

	utils.ResponseSuccess(w, "success", videos)
}
