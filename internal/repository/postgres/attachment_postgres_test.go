package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"lendapi/internal/model"
)

var attachmentCols = []string{"id", "application_id", "filename", "storage_path", "size", "content_type", "uploaded_at"}

func TestAttachmentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAttachmentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	att := &model.Attachment{
		ID:            "att-1",
		ApplicationID: "app-1",
		Filename:      "balance_sheet.pdf",
		StoragePath:   "applications/app-1/att-1.pdf",
		Size:          2048,
		ContentType:   "application/pdf",
		UploadedAt:    now,
	}

	rows := sqlmock.NewRows(attachmentCols).
		AddRow(att.ID, att.ApplicationID, att.Filename, att.StoragePath, att.Size, att.ContentType, att.UploadedAt)

	mock.ExpectQuery("INSERT INTO attachments").
		WithArgs(att.ID, att.ApplicationID, att.Filename, att.StoragePath, att.Size, att.ContentType, att.UploadedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, att)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, att.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAttachmentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(attachmentCols).
			AddRow("att-1", "app-1", "pnl.pdf", "applications/app-1/att-1.pdf", 100, "application/pdf", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM attachments WHERE id = ?").
			WithArgs("att-1").
			WillReturnRows(rows)

		att, err := repo.FindByID(ctx, "att-1")

		assert.NoError(t, err)
		assert.NotNil(t, att)
		assert.Equal(t, "att-1", att.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM attachments WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		att, err := repo.FindByID(ctx, "missing")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, att)
	})
}

func TestAttachmentPostgres_ListByApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAttachmentPostgres(db)

	rows := sqlmock.NewRows(attachmentCols).
		AddRow("att-2", "app-1", "cashflow.pdf", "applications/app-1/att-2.pdf", 200, "application/pdf", time.Now()).
		AddRow("att-1", "app-1", "pnl.pdf", "applications/app-1/att-1.pdf", 100, "application/pdf", time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM attachments WHERE application_id = ?").
		WithArgs("app-1").
		WillReturnRows(rows)

	atts, err := repo.ListByApplication(context.Background(), "app-1")

	assert.NoError(t, err)
	assert.Len(t, atts, 2)
	assert.Equal(t, "att-2", atts[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAttachmentPostgres(db)

	mock.ExpectExec("DELETE FROM attachments WHERE id = ?").
		WithArgs("att-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), "att-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
