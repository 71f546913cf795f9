package mocks

import (
	"context"
	"io"

	"credvault/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockResourceService[T any, U model.Patch] struct {
	mock.Mock
}

func (m *MockResourceService[T, U]) Create(ctx context.Context, rec *T) (*T, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceService[T, U]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockResourceService[T, U]) Find(ctx context.Context, key string) (*T, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceService[T, U]) Update(ctx context.Context, id string, patch U) (*T, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockResourceService[T, U]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockApplicationFileService struct {
	mock.Mock
}

func (m *MockApplicationFileService) Attach(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.JobHuntCredential, error) {
	args := m.Called(ctx, id, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.JobHuntCredential), args.Error(1)
}

func (m *MockApplicationFileService) Link(ctx context.Context, id, name string) (string, error) {
	args := m.Called(ctx, id, name)
	return args.String(0), args.Error(1)
}
