package entity

import (
	"time"
)

// Base is embedded by every stored document. IDs are UUID strings kept in
// the document _id field.
type Base struct {
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
