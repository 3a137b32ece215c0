package repository

import (
	"storage-rental/pkg/database"

	"go.uber.org/zap"
)

// Collection names in the document store.
const (
	CollectionUsers    = "users"
	CollectionStorages = "storages"
	CollectionBookings = "bookings"
)

type Repository struct {
	User    UserRepository
	Storage StorageRepository
	Booking BookingRepository
}

func NewRepository(db *database.Mongo, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Storage: NewStorageRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
