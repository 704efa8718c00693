package postgres

import (
	"context"
	"database/sql"

	"lendapi/internal/model"
	"lendapi/internal/repository"
)

const attachmentColumns = `id, application_id, filename, storage_path, size, content_type, uploaded_at`

// AttachmentPostgres is a PostgreSQL implementation of
// repository.AttachmentRepository.
type AttachmentPostgres struct {
	db *sql.DB
}

// NewAttachmentPostgres creates a new AttachmentPostgres repository.
func NewAttachmentPostgres(db *sql.DB) *AttachmentPostgres {
	return &AttachmentPostgres{db: db}
}

var _ repository.AttachmentRepository = (*AttachmentPostgres)(nil)

func scanAttachment(row interface{ Scan(...any) error }) (*model.Attachment, error) {
	var a model.Attachment
	if err := row.Scan(
		&a.ID,
		&a.ApplicationID,
		&a.Filename,
		&a.StoragePath,
		&a.Size,
		&a.ContentType,
		&a.UploadedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new attachment row and returns the stored record.
func (r *AttachmentPostgres) Create(ctx context.Context, att *model.Attachment) (*model.Attachment, error) {
	const q = `
		INSERT INTO attachments (` + attachmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + attachmentColumns
	return scanAttachment(r.db.QueryRowContext(ctx, q,
		att.ID,
		att.ApplicationID,
		att.Filename,
		att.StoragePath,
		att.Size,
		att.ContentType,
		att.UploadedAt,
	))
}

// FindByID fetches a single attachment by its ID.
func (r *AttachmentPostgres) FindByID(ctx context.Context, id string) (*model.Attachment, error) {
	const q = `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE id = $1`
	return scanAttachment(r.db.QueryRowContext(ctx, q, id))
}

// ListByApplication returns all attachments for one application, newest first.
func (r *AttachmentPostgres) ListByApplication(ctx context.Context, applicationID string) ([]model.Attachment, error) {
	const q = `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE application_id = $1
		ORDER BY uploaded_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	atts := make([]model.Attachment, 0)
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		atts = append(atts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return atts, nil
}

// Delete removes an attachment row by ID. Missing rows are not an error.
func (r *AttachmentPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	return err
}
