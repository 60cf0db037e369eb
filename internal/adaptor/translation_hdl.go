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

type TranslationHandler struct {
	service usecase.TranslationService
	log     *zap.Logger
}

func NewTranslationHandler(service usecase.TranslationService, log *zap.Logger) *TranslationHandler {
	return &TranslationHandler{
		service: service,
		log:     log.With(zap.String("handler", "translation")),
	}
}

// UpsertTranslation handles PUT /api/admin/translations (admin only)
func (h *TranslationHandler) UpsertTranslation(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	translation, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "upsert translation")
		return
	}

	utils.ResponseSuccess(w, "success", translation)
}

// ListTranslations handles GET /api/admin/translations/{entityType}/{entityID} (admin only)
func (h *TranslationHandler) ListTranslations(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "entityType")
	entityID := chi.URLParam(r, "entityID")
	if entityType == "" || entityID == "" {
		utils.ResponseBadRequest(w, "Entity type and ID are required", nil)
		return
	}

	translations, err := h.service.ListForEntity(r.Context(), entityType, entityID)
	if err != nil {
		handleServiceError(h.log, w, err, "list translations")
		return
	}

	utils.ResponseSuccess(w, "success", translations)
}

// DeleteTranslation handles DELETE /api/admin/translations/{id} (admin only)
func (h *TranslationHandler) DeleteTranslation(w http.ResponseWriter, r *http.Request) {
	translationID := chi.URLParam(r, "id")
	if translationID == "" {
		utils.ResponseBadRequest(w, "Translation ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), translationID); err != nil {
		handleServiceError(h.log, w, err, "delete translation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
