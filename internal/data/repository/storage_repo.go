package repository

import (
	"context"
	"errors"
	"fmt"

	"storage-rental/internal/data/entity"
	"storage-rental/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// StorageFilter narrows facility searches. Zero values mean "no constraint".
type StorageFilter struct {
	City        string
	StorageType string
	MaxPrice    int64 // minor units per box per week
}

type StorageRepository interface {
	// Upsert writes the provider's facility document, keyed by provider UID.
	Upsert(ctx context.Context, storage *entity.StorageFacility) error
	FindByID(ctx context.Context, providerUID string) (*entity.StorageFacility, error)
	Search(ctx context.Context, filter StorageFilter, sortBy string, limit, offset int) ([]*entity.StorageFacility, error)
	Count(ctx context.Context, filter StorageFilter) (int64, error)
}

type storageRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewStorageRepository(db *database.Mongo, log *zap.Logger) StorageRepository {
	return &storageRepository{
		coll: db.Collection(CollectionStorages),
		log:  log.With(zap.String("repository", "storage")),
	}
}

func (r *storageRepository) Upsert(ctx context.Context, storage *entity.StorageFacility) error {
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": storage.ID}, storage, opts); err != nil {
		r.log.Error("Failed to upsert storage facility",
			zap.Error(err),
			zap.String("provider_uid", storage.ID),
		)
		return fmt.Errorf("upsert storage %s: %w", storage.ID, err)
	}

	return nil
}

func (r *storageRepository) FindByID(ctx context.Context, providerUID string) (*entity.StorageFacility, error) {
	var storage entity.StorageFacility
	err := r.coll.FindOne(ctx, bson.M{"_id": providerUID}).Decode(&storage)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find storage facility",
			zap.Error(err),
			zap.String("provider_uid", providerUID),
		)
		return nil, fmt.Errorf("find storage by ID %s: %w", providerUID, err)
	}

	return &storage, nil
}

func (r *storageRepository) Search(ctx context.Context, filter StorageFilter, sortBy string, limit, offset int) ([]*entity.StorageFacility, error) {
	sortField := "created_at"
	if sortBy == "price" {
		sortField = "price_per_week"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.coll.Find(ctx, buildStorageQuery(filter), opts)
	if err != nil {
		r.log.Error("Failed to search storage facilities",
			zap.Error(err),
			zap.String("city", filter.City),
			zap.String("storage_type", filter.StorageType),
			zap.Int64("max_price", filter.MaxPrice),
		)
		return nil, fmt.Errorf("search storages: %w", err)
	}
	defer cursor.Close(ctx)

	var storages []*entity.StorageFacility
	if err := cursor.All(ctx, &storages); err != nil {
		r.log.Error("Failed to decode storage documents", zap.Error(err))
		return nil, fmt.Errorf("decode storage documents: %w", err)
	}

	return storages, nil
}

func (r *storageRepository) Count(ctx context.Context, filter StorageFilter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, buildStorageQuery(filter))
	if err != nil {
		r.log.Error("Failed to count storage facilities", zap.Error(err))
		return 0, fmt.Errorf("count storages: %w", err)
	}

	return count, nil
}

func buildStorageQuery(filter StorageFilter) bson.M {
	query := bson.M{}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.StorageType != "" {
		query["storage_type"] = filter.StorageType
	}
	if filter.MaxPrice > 0 {
		query["price_per_week"] = bson.M{"$lte": filter.MaxPrice}
	}
	return query
}
