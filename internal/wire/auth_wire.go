package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// POST /api/admin/login - Open an admin session (public)
	r.Post("/api/admin/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.Session.CookieName, log))

		// POST /api/admin/logout - Close the current session
		r.Post("/api/admin/logout", authHandler.Logout)

		// PUT /api/admin/password - Rotate the current admin's password
		r.Put("/api/admin/password", authHandler.ChangePassword)
	})
}
