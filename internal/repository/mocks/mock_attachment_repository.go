package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lendapi/internal/model"
)

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) Create(ctx context.Context, att *model.Attachment) (*model.Attachment, error) {
	args := m.Called(ctx, att)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id string) (*model.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListByApplication(ctx context.Context, applicationID string) ([]model.Attachment, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
