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
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id, name, phone string) error
}

type userRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewUserRepository(db *database.Mongo, log *zap.Logger) UserRepository {
	return &userRepository{
		coll: db.Collection(CollectionUsers),
		log:  log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id, err)
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id, name, phone string) error {
	update := bson.M{"$set": bson.M{
		"name":       name,
		"phone":      phone,
		"updated_at": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.log.Error("Failed to update user profile",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return fmt.Errorf("update user %s profile: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", id)
	}

	return nil
}
