package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"credvault/internal/config"
)

// Mongo is the process-wide MongoDB handle. It is opened once at startup and
// closed once at shutdown.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

var mongoConnect = func(opts *options.ClientOptions) (*mongo.Client, error) {
	return mongo.Connect(context.Background(), opts)
}

// NewMongo connects to the cluster at cfg.Mongo.URI, selects cfg.Name and verifies
// the primary is reachable.
func NewMongo(cfg config.StoreConfig) (*Mongo, error) {
	if cfg.Mongo.URI == "" || cfg.Name == "" {
		return nil, fmt.Errorf("invalid mongo config: uri and database name are required")
	}
	timeout := time.Duration(cfg.Mongo.ConnectTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = PingTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	client, err := mongoConnect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{Client: client, DB: client.Database(cfg.Name)}, nil
}

// PingContext checks the primary is reachable.
func (m *Mongo) PingContext(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
