package migration

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureIndexes creates a non-unique index on each collection's alternate lookup
// field. Duplicate alternate values stay allowed. Creating an existing index is a
// no-op on the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	log = log.With(zap.String("component", "database"))
	for _, c := range Collections {
		if c.AltField == "" {
			continue
		}
		name, err := db.Collection(c.Name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: c.AltField, Value: 1}},
		})
		if err != nil {
			log.Error("db_index_failed", zap.String("collection", c.Name), zap.Error(err))
			return fmt.Errorf("create index on %s.%s: %w", c.Name, c.AltField, err)
		}
		log.Info("db_index_ready", zap.String("collection", c.Name), zap.String("index", name))
	}
	return nil
}
