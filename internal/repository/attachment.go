package repository

import (
	"context"

	"lendapi/internal/model"
)

// AttachmentRepository is the persistence contract for attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, att *model.Attachment) (*model.Attachment, error)
	FindByID(ctx context.Context, id string) (*model.Attachment, error)
	ListByApplication(ctx context.Context, applicationID string) ([]model.Attachment, error)
	Delete(ctx context.Context, id string) error
}
