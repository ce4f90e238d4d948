package mocks

import (
	"context"
	"io"

	"resumeparser/internal/tempstore"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, r io.Reader, originalName string) (tempstore.Object, error) {
	args := m.Called(ctx, r, originalName)
	return args.Get(0).(tempstore.Object), args.Error(1)
}

func (m *MockStore) Read(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
