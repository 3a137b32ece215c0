package usecase

import (
	"context"
	"time"

	"storage-rental/internal/data/entity"
	"storage-rental/internal/data/repository"
	"storage-rental/internal/dto/request"
	"storage-rental/internal/dto/response"
	"storage-rental/pkg/errs"
	"storage-rental/pkg/utils"

	"go.uber.org/zap"
)

// FacilityCache is the slice of the redis cache the storage service needs.
// Satisfied by pkg/cache.Cache; swapped for a fake in tests.
type FacilityCache interface {
	GetJSON(ctx context.Context, key string, dest any) bool
	SetJSON(ctx context.Context, key string, value any)
	Delete(ctx context.Context, keys ...string)
}

type StorageService interface {
	// Provider endpoints
	UpsertStorage(ctx context.Context, providerUID string, req *request.UpsertStorageRequest) (*response.StorageResponse, error)

	// Public endpoints
	GetStorage(ctx context.Context, providerUID string) (*response.StorageResponse, error)
	SearchStorages(ctx context.Context, req *request.SearchStoragesRequest) (*response.PaginatedResponse[response.StorageResponse], error)
}

type storageService struct {
	repo  *repository.Repository
	cache FacilityCache
	log   *zap.Logger
}

func NewStorageService(repo *repository.Repository, cache FacilityCache, log *zap.Logger) StorageService {
	return &storageService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "storage")),
	}
}

func storageCacheKey(providerUID string) string {
	return "storage:" + providerUID
}

func (s *storageService) UpsertStorage(ctx context.Context, providerUID string, req *request.UpsertStorageRequest) (*response.StorageResponse, error) {
	const op = "upsert_storage"

	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Upsert storage validation failed", zap.Any("errors", errors))
		return nil, errs.New(errs.KindInvalid, op, "validation failed: "+utils.FormatValidationErrors(errors))
	}

	now := time.Now()
	existing, err := s.repo.Storage.FindByID(ctx, providerUID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load storage facility", err)
	}

	createdAt := now
	if existing != nil {
		createdAt = existing.CreatedAt
	}

	storage := &entity.StorageFacility{
		ID:           providerUID,
		Name:         req.Name,
		Image:        req.Image,
		Address:      req.Address,
		Phone:        req.Phone,
		City:         req.City,
		StorageType:  req.StorageType,
		PricePerWeek: req.PricePerWeek,
		TotalBoxes:   req.TotalBoxes,
		Description:  req.Description,
		CreatedAt:    createdAt,
		UpdatedAt:    now,
	}

	if err := s.repo.Storage.Upsert(ctx, storage); err != nil {
		s.log.Error("Failed to upsert storage facility",
			zap.Error(err),
			zap.String("provider_uid", providerUID),
		)
		return nil, errs.Wrap(errs.KindStore, op, "failed to save storage facility", err)
	}

	// Invalidate stale snapshot
	s.cache.Delete(ctx, storageCacheKey(providerUID))

	s.log.Info("Storage facility saved",
		zap.String("provider_uid", providerUID),
		zap.String("name", req.Name),
		zap.String("city", req.City),
		zap.Int64("price_per_week", req.PricePerWeek),
	)

	resp := response.StorageToResponse(storage)
	return &resp, nil
}

func (s *storageService) GetStorage(ctx context.Context, providerUID string) (*response.StorageResponse, error) {
	const op = "get_storage"

	var cached entity.StorageFacility
	if s.cache.GetJSON(ctx, storageCacheKey(providerUID), &cached) {
		resp := response.StorageToResponse(&cached)
		return &resp, nil
	}

	storage, err := s.repo.Storage.FindByID(ctx, providerUID)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to load storage facility", err)
	}
	if storage == nil {
		return nil, errs.New(errs.KindNotFound, op, "storage facility not found")
	}

	s.cache.SetJSON(ctx, storageCacheKey(providerUID), storage)

	resp := response.StorageToResponse(storage)
	return &resp, nil
}

func (s *storageService) SearchStorages(ctx context.Context, req *request.SearchStoragesRequest) (*response.PaginatedResponse[response.StorageResponse], error) {
	const op = "search_storages"

	filter := repository.StorageFilter{
		City:        req.City,
		StorageType: req.StorageType,
		MaxPrice:    req.MaxPrice,
	}

	storages, err := s.repo.Storage.Search(ctx, filter, req.SortBy, req.Limit(), req.Offset())
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to search storage facilities", err)
	}

	total, err := s.repo.Storage.Count(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(errs.KindStore, op, "failed to count storage facilities", err)
	}

	storageResponses := make([]response.StorageResponse, len(storages))
	for i, storage := range storages {
		storageResponses[i] = response.StorageToResponse(storage)
	}

	s.log.Info("Storage facilities searched",
		zap.String("city", req.City),
		zap.String("storage_type", req.StorageType),
		zap.Int64("max_price", req.MaxPrice),
		zap.Int("count", len(storages)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(storageResponses, req.Page, req.PerPage, total), nil
}
