package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no document matches a filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateID is returned when an insert collides with an existing _id.
	ErrDuplicateID = errors.New("duplicate document id")
)

// Filter selects documents whose Field equals Value.
type Filter struct {
	Field string
	Value string
}

// DocumentRepository defines per-collection document access.
// Implementations do single store operations only.
type DocumentRepository[T any] interface {
	// Insert stores a new document. The document must already carry its _id.
	Insert(ctx context.Context, doc *T) error

	// FindOne returns the first document matching the filter, or ErrNotFound.
	FindOne(ctx context.Context, f Filter) (*T, error)

	// List returns at most limit documents in store-native order.
	List(ctx context.Context, limit int) ([]T, error)

	// SetFields overwrites the given top-level fields on the document with the given id.
	// It returns the number of documents matched, which is 0 or 1.
	SetFields(ctx context.Context, id string, fields map[string]any) (int64, error)

	// AppendToList appends value to the string list stored under field in a single
	// store-side update, treating a missing or null field as empty. It returns the
	// number of documents matched.
	AppendToList(ctx context.Context, id, field, value string) (int64, error)

	// Delete removes the document with the given id and returns how many were removed.
	Delete(ctx context.Context, id string) (int64, error)
}
