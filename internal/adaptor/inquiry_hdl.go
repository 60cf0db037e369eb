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

type InquiryHandler struct {
	service usecase.InquiryService
	log     *zap.Logger
}

func NewInquiryHandler(service usecase.InquiryService, log *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		log:     log.With(zap.String("handler", "inquiry")),
	}
}

// CreateInquiry handles POST /api/inquiries (public)
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	inquiry, err := h.service.CreateInquiry(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create inquiry")
		return
	}

	utils.ResponseCreated(w, "success", inquiry)
}

// ==================== ADMIN METHODS ====================

// ListInquiries handles GET /api/admin/inquiries (admin only)
func (h *InquiryHandler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 20)

	inquiries, err := h.service.ListInquiries(r.Context(), query.Get("status"), page, perPage)
	if err != nil {
		handleServiceError(h.log, w, err, "list inquiries")
		return
	}

	utils.ResponseSuccess(w, "success", inquiries)
}

// GetInquiryByID handles GET /api/admin/inquiries/{id} (admin only)
func (h *InquiryHandler) GetInquiryByID(w http.ResponseWriter, r *http.Request) {
	inquiryID := chi.URLParam(r, "id")
	if inquiryID == "" {
		utils.ResponseBadRequest(w, "Inquiry ID is required", nil)
		return
	}

	inquiry, err := h.service.GetInquiryByID(r.Context(), inquiryID)
	if err != nil {
		handleServiceError(h.log, w, err, "get inquiry by ID")
		return
	}

	utils.ResponseSuccess(w, "success", inquiry)
}

// UpdateInquiryStatus handles PUT /api/admin/inquiries/{id}/status (admin only)
func (h *InquiryHandler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	inquiryID := chi.URLParam(r, "id")
	if inquiryID == "" {
		utils.ResponseBadRequest(w, "Inquiry ID is required", nil)
		return
	}

	var req request.UpdateInquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	inquiry, err := h.service.UpdateInquiryStatus(r.Context(), inquiryID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update inquiry status")
		return
	}

	utils.ResponseSuccess(w, "success", inquiry)
}
