package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"lendapi/internal/model"
)

type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Upload(ctx context.Context, applicationID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error) {
	args := m.Called(ctx, applicationID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) ListByApplication(ctx context.Context, applicationID string) ([]model.Attachment, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}

func (m *MockAttachmentService) DownloadURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
