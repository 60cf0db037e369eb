package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSite(
	r chi.Router,
	siteHandler *adaptor.SiteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/gallery - Gallery image list
	r.Get("/api/gallery", siteHandler.GetGallery)

	// GET /api/videos - Video link list
	r.Get("/api/videos", siteHandler.GetVideos)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		r.Get("/api/admin/settings", siteHandler.ListSettings)
		r.Get("/api/admin/settings/{key}", siteHandler.GetSetting)
		r.Put("/api/admin/settings/{key}", siteHandler.UpsertSetting)
		r.Put("/api/admin/gallery", siteHandler.UpdateGallery)
		r.Put("/api/admin/videos", siteHandler.UpdateVideos)
	})
}
