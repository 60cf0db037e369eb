package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTranslation(
	r chi.Router,
	translationHandler *adaptor.TranslationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin/translations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		r.Put("/", translationHandler.UpsertTranslation)
		r.Get("/{entityType}/{entityID}", translationHandler.ListTranslations)
		r.Delete("/{id}", translationHandler.DeleteTranslation)
	})
}
