package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInquiry(
	r chi.Router,
	inquiryHandler *adaptor.InquiryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/inquiry - Submit the contact/quote form (public)
	r.Post("/api/inquiry", inquiryHandler.CreateInquiry)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/inquiries", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		r.Get("/", inquiryHandler.ListInquiries)
		r.Get("/{id}", inquiryHandler.GetInquiryByID)
		r.Put("/{id}/status", inquiryHandler.UpdateInquiryStatus)
	})
}
