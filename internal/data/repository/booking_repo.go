package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storage-rental/internal/data/entity"
	"storage-rental/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	FindByStorageID(ctx context.Context, storageID string, limit, offset int) ([]*entity.Booking, error)
	CountByStorageID(ctx context.Context, storageID string) (int64, error)

	// MarkPaid flips the booking to paid. The paid flag only ever moves
	// false -> true, after signature verification.
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
}

type bookingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingRepository(db *database.Mongo, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		coll: db.Collection(CollectionBookings),
		log:  log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("user_id", booking.UserID),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.coll.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&booking)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by order ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find booking by order ID %s: %w", orderID, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, error) {
	return r.findMany(ctx, bson.M{"user_id": userID}, limit, offset)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID, err)
	}

	return count, nil
}

func (r *bookingRepository) FindByStorageID(ctx context.Context, storageID string, limit, offset int) ([]*entity.Booking, error) {
	return r.findMany(ctx, bson.M{"storage_id": storageID}, limit, offset)
}

func (r *bookingRepository) CountByStorageID(ctx context.Context, storageID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"storage_id": storageID})
	if err != nil {
		r.log.Error("Failed to count bookings by storage ID",
			zap.Error(err),
			zap.String("storage_id", storageID),
		)
		return 0, fmt.Errorf("count bookings by storage ID %s: %w", storageID, err)
	}

	return count, nil
}

func (r *bookingRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"paid":       true,
		"paid_at":    paidAt,
		"updated_at": paidAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("mark booking %s paid: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}

func (r *bookingRepository) findMany(ctx context.Context, filter bson.M, limit, offset int) ([]*entity.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Any("filter", filter),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode booking documents", zap.Error(err))
		return nil, fmt.Errorf("decode booking documents: %w", err)
	}

	return bookings, nil
}
