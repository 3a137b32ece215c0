package database

import (
	"context"
	"fmt"
	"time"

	"storage-rental/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo wraps the client plus the named database so repositories only see
// typed collections.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// InitMongo connects and pings the document store.
func InitMongo(config utils.MongoConfig) (*Mongo, error) {
	clientOptions := options.Client().
		ApplyURI(config.URI).
		SetConnectTimeout(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(config.Database),
	}, nil
}

// Collection returns a handle on a named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
