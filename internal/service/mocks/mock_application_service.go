package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lendapi/internal/model"
	"lendapi/internal/service"
)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Seed(ctx context.Context) (*service.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedResult), args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context, search string) (*service.ApplicationListResult, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ApplicationListResult), args.Error(1)
}

func (m *MockApplicationService) Get(ctx context.Context, id string) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationService) UpdateReviewStatus(ctx context.Context, id, status string) (*model.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}
