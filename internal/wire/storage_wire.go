package wire

import (
	"storage-rental/internal/adaptor"
	"storage-rental/pkg/middleware"
	"storage-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStorage(
	r chi.Router,
	storageHandler *adaptor.StorageHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/storages - Search/filter/sort facility listings
	r.Get("/api/storages", storageHandler.SearchStorages)

	// GET /api/storages/{id} - Facility details
	r.Get("/api/storages/{id}", storageHandler.GetStorage)

	// ==================== PROVIDER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Provider(log))

		// PUT /api/provider/storage - Create or update own facility listing
		r.Put("/api/provider/storage", storageHandler.UpsertStorage)
	})
}
