package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"lendapi/internal/model"
	"lendapi/internal/repository"
	"lendapi/internal/storage"
)

const downloadURLExpiry = 15 * time.Minute

// AttachmentService defines the use cases for financial-statement uploads
// attached to applications.
type AttachmentService interface {
	// Upload stores the content in object storage and its metadata in the
	// database, rolling back the object if the metadata insert fails. The
	// original filename is kept as display metadata; the object key is
	// UUID-based.
	Upload(ctx context.Context, applicationID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error)

	// ListByApplication returns all attachments for one application.
	ListByApplication(ctx context.Context, applicationID string) ([]model.Attachment, error)

	// DownloadURL returns a short-lived presigned GET URL for an attachment.
	DownloadURL(ctx context.Context, id string) (string, error)

	// Delete removes an attachment from storage, then its record.
	Delete(ctx context.Context, id string) error
}

type attachmentService struct {
	store storage.Storage
	repo  repository.AttachmentRepository
	apps  repository.ApplicationRepository
}

// NewAttachmentService constructs a new AttachmentService.
func NewAttachmentService(store storage.Storage, repo repository.AttachmentRepository, apps repository.ApplicationRepository) AttachmentService {
	return &attachmentService{store: store, repo: repo, apps: apps}
}

func (s *attachmentService) Upload(ctx context.Context, applicationID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Attachment, error) {
	if applicationID == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	// The application must exist before we touch storage.
	if _, err := s.apps.FindByID(ctx, applicationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	id := uuid.NewString()
	key := filepath.ToSlash(filepath.Join("applications", applicationID, id+filepath.Ext(originalFilename)))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	att := &model.Attachment{
		ID:            id,
		ApplicationID: applicationID,
		Filename:      originalFilename,
		StoragePath:   objInfo.Key,
		Size:          objInfo.Size,
		ContentType:   objInfo.ContentType,
		UploadedAt:    time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, att)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *attachmentService) ListByApplication(ctx context.Context, applicationID string) ([]model.Attachment, error) {
	if applicationID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.apps.FindByID(ctx, applicationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.ListByApplication(ctx, applicationID)
}

func (s *attachmentService) DownloadURL(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	att, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	url, err := s.store.PresignGet(ctx, att.StoragePath, downloadURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

func (s *attachmentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	att, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Storage first; a failure here keeps the row so the object stays reachable.
	if err := s.store.Delete(ctx, att.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}
