package database

import (
	"context"
	"fmt"
	"time"

	"tour-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo wraps the driver client and the application database. It is
// built once at startup and handed to the repositories, nothing else
// holds a connection.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Collection returns a handle scoped to the application database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping checks server reachability.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// InitDB connects to MongoDB and verifies the connection.
func InitDB(config utils.DatabaseConfig) (*Mongo, error) {
	if config.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is not set")
	}

	serverAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(config.URI).
		SetServerAPIOptions(serverAPIOptions).
		SetConnectTimeout(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	// Test connection
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb failed: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(config.Name),
	}, nil
}
