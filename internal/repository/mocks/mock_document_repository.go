package mocks

import (
	"context"

	"credvault/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockDocumentRepository[T any] struct {
	mock.Mock
}

var _ repository.DocumentRepository[struct{}] = (*MockDocumentRepository[struct{}])(nil)

func (m *MockDocumentRepository[T]) Insert(ctx context.Context, doc *T) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository[T]) FindOne(ctx context.Context, f repository.Filter) (*T, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockDocumentRepository[T]) List(ctx context.Context, limit int) ([]T, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockDocumentRepository[T]) SetFields(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository[T]) AppendToList(ctx context.Context, id, field, value string) (int64, error) {
	args := m.Called(ctx, id, field, value)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository[T]) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
