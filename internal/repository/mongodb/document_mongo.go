// Package mongodb implements repository.DocumentRepository on MongoDB collections.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"credvault/internal/model"
	"credvault/internal/repository"
)

// DocumentMongo stores documents of type T in a single MongoDB collection.
// It is safe for concurrent use; the driver pools connections.
type DocumentMongo[T any] struct {
	coll *mongo.Collection
}

// NewDocumentMongo creates a repository over coll.
func NewDocumentMongo[T any](coll *mongo.Collection) *DocumentMongo[T] {
	return &DocumentMongo[T]{coll: coll}
}

var _ repository.DocumentRepository[model.Country] = (*DocumentMongo[model.Country])(nil)

// Insert inserts one document.
func (r *DocumentMongo[T]) Insert(ctx context.Context, doc *T) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", repository.ErrDuplicateID, err)
		}
		return err
	}
	return nil
}

// FindOne returns the first document whose field equals the filter value.
func (r *DocumentMongo[T]) FindOne(ctx context.Context, f repository.Filter) (*T, error) {
	var out T
	err := r.coll.FindOne(ctx, bson.D{{Key: f.Field, Value: f.Value}}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// List returns up to limit documents without sorting.
func (r *DocumentMongo[T]) List(ctx context.Context, limit int) ([]T, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetFields applies a $set of the given fields to the document with the given id.
func (r *DocumentMongo[T]) SetFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: model.IDField, Value: id}},
		bson.D{{Key: "$set", Value: bson.M(fields)}},
	)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// AppendToList concatenates value onto field with an aggregation-pipeline update,
// so concurrent appends to the same document never overwrite each other.
func (r *DocumentMongo[T]) AppendToList(ctx context.Context, id, field, value string) (int64, error) {
	current := bson.D{{Key: "$ifNull", Value: bson.A{"$" + field, bson.A{}}}}
	appended := bson.A{bson.D{{Key: "$literal", Value: value}}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: field, Value: bson.D{{Key: "$concatArrays", Value: bson.A{current, appended}}}},
		}}},
	}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: model.IDField, Value: id}}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes the document with the given id.
func (r *DocumentMongo[T]) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: model.IDField, Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
