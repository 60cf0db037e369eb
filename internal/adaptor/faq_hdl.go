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

type FAQHandler struct {
	service usecase.FAQService
	log     *zap.Logger
}

func NewFAQHandler(service usecase.FAQService, log *zap.Logger) *FAQHandler {
	return &FAQHandler{
		service: service,
		log:     log.With(zap.String("handler", "faq")),
	}
}

// ListFAQs handles GET /api/faq (public)
func (h *FAQHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListFAQs(r.Context(), r.URL.Query().Get("locale"))
	if err != nil {
		handleServiceError(h.log, w, err, "list faqs")
		return
	}

	utils.ResponseSuccess(w, "success", faqs)
}

// ==================== ADMIN METHODS ====================

// ListAllFAQs handles GET /api/admin/faq (admin only)
func (h *FAQHandler) ListAllFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.ListAllFAQs(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list all faqs")
		return
	}

	utils.ResponseSuccess(w, "success", faqs)
}

// CreateFAQ handles POST /api/admin/faq (admin only)
func (h *FAQHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req request.FAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	faq, err := h.service.CreateFAQ(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create faq")
		return
	}

	utils.ResponseCreated(w, "success", faq)
}

// UpdateFAQ handles PUT /api/admin/faq/{id} (admin only)
func (h *FAQHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	faqID := chi.URLParam(r, "id")
	if faqID == "" {
		utils.ResponseBadRequest(w, "FAQ ID is required", nil)
		return
	}

	var req request.FAQUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	faq, err := h.service.UpdateFAQ(r.Context(), faqID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update faq")
		return
	}

	utils.ResponseSuccess(w, "success", faq)
}

// DeleteFAQ handles DELETE /api/admin/faq/{id} (admin only)
func (h *FAQHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	faqID := chi.URLParam(r, "id")
	if faqID == "" {
		utils.ResponseBadRequest(w, "FAQ ID is required", nil)
		return
	}

	if err := h.service.DeleteFAQ(r.Context(), faqID); err != nil {
		handleServiceError(h.log, w, err, "delete faq")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
