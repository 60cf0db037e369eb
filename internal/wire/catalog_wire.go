package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/packages - List active packages, filterable by type and locale
	r.Get("/api/packages", catalogHandler.ListPackages)

	// GET /api/packages/{slug} - Package detail page data
	r.Get("/api/packages/{slug}", catalogHandler.GetPackageBySlug)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/packages", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		r.Get("/", catalogHandler.ListAllPackages)
		r.Post("/", catalogHandler.CreatePackage)
		r.Get("/{id}", catalogHandler.GetPackageByID)
		r.Put("/{id}", catalogHandler.UpdatePackage)
		r.Delete("/{id}", catalogHandler.DeletePackage)
	})
}
