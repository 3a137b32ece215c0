package wire

import (
	"storage-rental/internal/adaptor"
	"storage-rental/pkg/middleware"
	"storage-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// GET /api/user/profile - Own profile
		r.Get("/api/user/profile", userHandler.GetProfile)

		// PUT /api/user/profile - Update own profile
		r.Put("/api/user/profile", userHandler.UpdateProfile)
	})
}
