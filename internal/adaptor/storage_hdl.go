package adaptor

import (
	"encoding/json"
	"net/http"

	"storage-rental/internal/dto/request"
	"storage-rental/internal/usecase"
	"storage-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StorageHandler struct {
	service usecase.StorageService
	log     *zap.Logger
}

func NewStorageHandler(service usecase.StorageService, log *zap.Logger) *StorageHandler {
	return &StorageHandler{
		service: service,
		log:     log.With(zap.String("handler", "storage")),
	}
}

// UpsertStorage handles PUT /api/provider/storage (provider only)
func (h *StorageHandler) UpsertStorage(w http.ResponseWriter, r *http.Request) {
	providerUID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpsertStorageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	storage, err := h.service.UpsertStorage(r.Context(), providerUID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "upsert storage")
		return
	}

	utils.ResponseSuccess(w, "success", storage)
}

// GetStorage handles GET /api/storages/{id} (public)
func (h *StorageHandler) GetStorage(w http.ResponseWriter, r *http.Request) {
	providerUID := chi.URLParam(r, "id")
	if providerUID == "" {
		utils.ResponseBadRequest(w, "Storage ID is required", nil)
		return
	}

	storage, err := h.service.GetStorage(r.Context(), providerUID)
	if err != nil {
		handleServiceError(w, h.log, err, "get storage")
		return
	}

	utils.ResponseSuccess(w, "success", storage)
}

// SearchStorages handles GET /api/storages (public)
func (h *StorageHandler) SearchStorages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.SearchStoragesRequest{
		City:        query.Get("city"),
		StorageType: query.Get("storage_type"),
		MaxPrice:    utils.ParseInt64(query.Get("max_price")),
		SortBy:      query.Get("sort_by"),
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
	}

	storages, err := h.service.SearchStorages(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "search storages")
		return
	}

	utils.ResponseSuccess(w, "success", storages)
}
