package entity

import (
	"time"
)

// StorageFacility is the listing a provider offers. Documents are keyed by
// the provider UID, one facility per provider.
type StorageFacility struct {
	ID           string    `bson:"_id"` // provider UID
	Name         string    `bson:"name"`
	Image        string    `bson:"image"`
	Address      string    `bson:"address"`
	Phone        string    `bson:"phone"`
	City         string    `bson:"city"`
	StorageType  string    `bson:"storage_type"`
	PricePerWeek int64     `bson:"price_per_week"` // minor units, per box
	TotalBoxes   int       `bson:"total_boxes"`
	Description  string    `bson:"description"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}
