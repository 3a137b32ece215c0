package entity

import (
	"time"
)

// Booking links a user to a storage facility for a date range and box
// count. Facility display fields are denormalized snapshots taken at
// creation, not live references.
type Booking struct {
	Base
	StorageID   string     `bson:"storage_id"`
	UserID      string     `bson:"user_id"`
	UserName    string     `bson:"user_name"`
	StorageName string     `bson:"storage_name"`
	Image       string     `bson:"image"`
	Boxes       int        `bson:"boxes"`
	Amount      int64      `bson:"amount"` // minor currency units
	Address     string     `bson:"address"`
	Phone       string     `bson:"phone"`
	StorageType string     `bson:"storage_type"`
	OrderID     string     `bson:"order_id"`
	FromDate    time.Time  `bson:"from_date"`
	ToDate      time.Time  `bson:"to_date"`
	Paid        bool       `bson:"paid"`
	PaidAt      *time.Time `bson:"paid_at,omitempty"`
}
