package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeparser/internal/model"
	"resumeparser/internal/repository"
)

type MockExtractionRepository struct {
	mock.Mock
}

func (m *MockExtractionRepository) Create(ctx context.Context, e *model.Extraction) (*model.Extraction, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Extraction), args.Error(1)
}

func (m *MockExtractionRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Extraction], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Extraction]), args.Error(1)
}

func (m *MockExtractionRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
