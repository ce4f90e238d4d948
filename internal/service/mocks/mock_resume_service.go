package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeparser/internal/service"
)

type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) Parse(ctx context.Context, in service.ParseInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockResumeService) ListExtractions(ctx context.Context, limit, offset int) (*service.ExtractionListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractionListResult), args.Error(1)
}
