package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"credvault/internal/model"
	"credvault/internal/repository"
)

// ListLimit caps the number of documents List returns.
const ListLimit = 100

// ResourceService defines the CRUD use cases shared by every entity.
type ResourceService[T any, U model.Patch] interface {
	// Create stores rec, generating an id if it has none, and returns the stored record.
	Create(ctx context.Context, rec *T) (*T, error)

	// List returns up to ListLimit records.
	List(ctx context.Context) ([]T, error)

	// Find resolves key through the resource's lookups in order.
	Find(ctx context.Context, key string) (*T, error)

	// Update applies the supplied fields of patch and returns the record as stored afterwards.
	Update(ctx context.Context, id string, patch U) (*T, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
}

// Descriptor names an entity and how it is looked up.
type Descriptor struct {
	Entity  string
	Lookups []Lookup
}

// Resource is the generic ResourceService implementation. PT is the pointer type of
// T, which lets the service read and assign ids without reflection.
type Resource[T any, PT interface {
	*T
	model.Record
}, U model.Patch] struct {
	desc Descriptor
	repo repository.DocumentRepository[T]
}

// NewResource constructs a Resource. A descriptor without lookups finds by id only.
func NewResource[T any, PT interface {
	*T
	model.Record
}, U model.Patch](desc Descriptor, repo repository.DocumentRepository[T]) *Resource[T, PT, U] {
	if len(desc.Lookups) == 0 {
		desc.Lookups = []Lookup{ByID()}
	}
	return &Resource[T, PT, U]{desc: desc, repo: repo}
}

func (s *Resource[T, PT, U]) Create(ctx context.Context, rec *T) (*T, error) {
	p := PT(rec)
	if p.GetID() == "" {
		p.SetID(uuid.NewString())
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return s.byID(ctx, p.GetID())
}

func (s *Resource[T, PT, U]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx, ListLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (s *Resource[T, PT, U]) Find(ctx context.Context, key string) (*T, error) {
	for _, l := range s.desc.Lookups {
		rec, err := s.repo.FindOne(ctx, l.Match(key))
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return nil, &NotFoundError{Entity: s.desc.Entity, Label: lookupLabel(s.desc.Lookups), Key: key}
}

// Update treats a merge that matched no document as not found. A merge that matched
// but changed nothing succeeds.
func (s *Resource[T, PT, U]) Update(ctx context.Context, id string, patch U) (*T, error) {
	if fields := patch.Fields(); len(fields) > 0 {
		matched, err := s.repo.SetFields(ctx, id, fields)
		if err != nil {
			return nil, err
		}
		if matched == 0 {
			return nil, s.notFound(id)
		}
	}
	return s.byID(ctx, id)
}

func (s *Resource[T, PT, U]) Delete(ctx context.Context, id string) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n != 1 {
		return s.notFound(id)
	}
	return nil
}

func (s *Resource[T, PT, U]) byID(ctx context.Context, id string) (*T, error) {
	rec, err := s.repo.FindOne(ctx, ByID().Match(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.notFound(id)
		}
		return nil, err
	}
	return rec, nil
}

func (s *Resource[T, PT, U]) notFound(id string) error {
	return &NotFoundError{Entity: s.desc.Entity, Label: "ID", Key: id}
}
