package usecase

import (
	"context"
	"testing"

	"storage-rental/internal/data/repository"
	"storage-rental/internal/dto/request"
	"storage-rental/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStorageFixture() (StorageService, *fakeStorageRepo, *fakeCache) {
	storageRepo := newFakeStorageRepo()
	cache := newFakeCache()
	repo := &repository.Repository{Storage: storageRepo}
	return NewStorageService(repo, cache, zap.NewNop()), storageRepo, cache
}

func upsertRequest() *request.UpsertStorageRequest {
	return &request.UpsertStorageRequest{
		Name:         "Central Self Storage",
		Address:      "12 Dock Road",
		Phone:        "+91-555-0101",
		City:         "Pune",
		StorageType:  "climate_controlled",
		PricePerWeek: 1250,
		TotalBoxes:   200,
	}
}

func TestUpsertStorage(t *testing.T) {
	svc, storageRepo, cache := newStorageFixture()

	resp, err := svc.UpsertStorage(context.Background(), "provider-1", upsertRequest())
	require.NoError(t, err)

	// Keyed by provider UID
	assert.Equal(t, "provider-1", resp.ID)
	require.NotNil(t, storageRepo.storages["provider-1"])

	// Stale cache entry dropped
	assert.Contains(t, cache.deletes, "storage:provider-1")
}

func TestUpsertStorage_PreservesCreatedAt(t *testing.T) {
	svc, storageRepo, _ := newStorageFixture()

	_, err := svc.UpsertStorage(context.Background(), "provider-1", upsertRequest())
	require.NoError(t, err)
	createdAt := storageRepo.storages["provider-1"].CreatedAt

	req := upsertRequest()
	req.PricePerWeek = 1500

	_, err = svc.UpsertStorage(context.Background(), "provider-1", req)
	require.NoError(t, err)

	updated := storageRepo.storages["provider-1"]
	assert.Equal(t, createdAt, updated.CreatedAt)
	assert.Equal(t, int64(1500), updated.PricePerWeek)
}

func TestGetStorage_CacheFlow(t *testing.T) {
	svc, storageRepo, cache := newStorageFixture()

	_, err := svc.UpsertStorage(context.Background(), "provider-1", upsertRequest())
	require.NoError(t, err)

	// First read misses and populates the cache
	resp, err := svc.GetStorage(context.Background(), "provider-1")
	require.NoError(t, err)
	assert.Equal(t, "Central Self Storage", resp.Name)
	assert.Equal(t, 0, cache.hits)

	// Second read is served from cache even if the store breaks
	storageRepo.findErr = assert.AnError

	resp, err = svc.GetStorage(context.Background(), "provider-1")
	require.NoError(t, err)
	assert.Equal(t, "Central Self Storage", resp.Name)
	assert.Equal(t, 1, cache.hits)
}

func TestGetStorage_NotFound(t *testing.T) {
	svc, _, _ := newStorageFixture()

	_, err := svc.GetStorage(context.Background(), "no-such-provider")
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestSearchStorages(t *testing.T) {
	svc, _, _ := newStorageFixture()

	_, err := svc.UpsertStorage(context.Background(), "provider-1", upsertRequest())
	require.NoError(t, err)

	mumbai := upsertRequest()
	mumbai.City = "Mumbai"
	mumbai.PricePerWeek = 2000
	_, err = svc.UpsertStorage(context.Background(), "provider-2", mumbai)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  request.SearchStoragesRequest
		want int
	}{
		{"no filter", request.SearchStoragesRequest{}, 2},
		{"by city", request.SearchStoragesRequest{City: "Pune"}, 1},
		{"by max price", request.SearchStoragesRequest{MaxPrice: 1300}, 1},
		{"no match", request.SearchStoragesRequest{City: "Delhi"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Page = 1
			tt.req.PerPage = 10

			page, err := svc.SearchStorages(context.Background(), &tt.req)
			require.NoError(t, err)
			assert.Len(t, page.Data, tt.want)
			assert.Equal(t, int64(tt.want), page.Pagination.Total)
		})
	}
}
