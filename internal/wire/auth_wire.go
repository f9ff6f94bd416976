package wire

import (
	"salon-agenda/internal/adaptor"
	"salon-agenda/internal/data/repository"
	"salon-agenda/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================

	// POST /api/auth/register - Create a new account
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Exchange credentials for a session token
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/auth/logout - Revoke the current session
		r.Post("/api/auth/logout", authHandler.Logout)

		// GET /api/auth/me - Current user profile
		r.Get("/api/auth/me", authHandler.Profile)
	})
}
