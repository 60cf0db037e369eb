package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFAQ(
	r chi.Router,
	faqHandler *adaptor.FAQHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/faq - List active FAQs ordered by position (public)
	r.Get("/api/faq", faqHandler.ListFAQs)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/faq", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		r.Get("/", faqHandler.ListAllFAQs)
		r.Post("/", faqHandler.CreateFAQ)
		r.Put("/{id}", faqHandler.UpdateFAQ)
		r.Delete("/{id}", faqHandler.DeleteFAQ)
	})
}
