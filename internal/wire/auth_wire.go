package wire

import (
	"storage-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Create account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Obtain access token
	r.Post("/api/login", authHandler.Login)
}
