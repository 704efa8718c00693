package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lendapi/internal/model"
	"lendapi/internal/repository"
)

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) List(ctx context.Context, q repository.ListQuery) ([]model.Application, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id string) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) UpdateReviewStatus(ctx context.Context, id, status string, updatedAt time.Time) (*model.Application, error) {
	args := m.Called(ctx, id, status, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockApplicationRepository) InsertBatch(ctx context.Context, apps []model.Application) error {
	args := m.Called(ctx, apps)
	return args.Error(0)
}

func (m *MockApplicationRepository) StatusCounts(ctx context.Context) ([]repository.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StatusCount), args.Error(1)
}
