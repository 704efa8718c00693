package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lendapi/internal/model"
	repomocks "lendapi/internal/repository/mocks"
	"lendapi/internal/storage"
	storagemocks "lendapi/internal/storage/mocks"
)

func TestAttachmentService_Upload(t *testing.T) {
	app := &model.Application{ID: "app-1"}

	t.Run("success", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(repomocks.MockAttachmentRepository)
		apps := new(repomocks.MockApplicationRepository)
		svc := NewAttachmentService(store, repo, apps)

		apps.On("FindByID", mock.Anything, "app-1").Return(app, nil)
		store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "applications/app-1/") && strings.HasSuffix(key, ".pdf")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "application/pdf" && opt.Size == 2048
		})).Return(storage.ObjectInfo{Key: "applications/app-1/x.pdf", Size: 2048, ContentType: "application/pdf"}, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Attachment) bool {
			return a.ApplicationID == "app-1" && a.Filename == "pnl.pdf" && a.StoragePath == "applications/app-1/x.pdf"
		})).Return(&model.Attachment{ID: "att-1", ApplicationID: "app-1", Filename: "pnl.pdf"}, nil)

		got, err := svc.Upload(context.Background(), "app-1", strings.NewReader("content"), "pnl.pdf", "application/pdf", 2048)

		require.NoError(t, err)
		assert.Equal(t, "att-1", got.ID)
		store.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("unknown application", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(repomocks.MockAttachmentRepository)
		apps := new(repomocks.MockApplicationRepository)
		svc := NewAttachmentService(store, repo, apps)

		apps.On("FindByID", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

		got, err := svc.Upload(context.Background(), "ghost", strings.NewReader("x"), "f.pdf", "application/pdf", 1)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rolls back storage when db insert fails", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(repomocks.MockAttachmentRepository)
		apps := new(repomocks.MockApplicationRepository)
		svc := NewAttachmentService(store, repo, apps)

		apps.On("FindByID", mock.Anything, "app-1").Return(app, nil)
		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "applications/app-1/x.pdf"}, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("constraint violation"))
		store.On("Delete", mock.Anything, mock.Anything).Return(nil)

		got, err := svc.Upload(context.Background(), "app-1", strings.NewReader("x"), "f.pdf", "application/pdf", 1)

		assert.Error(t, err)
		assert.Nil(t, got)
		store.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc := NewAttachmentService(new(storagemocks.MockStorage), new(repomocks.MockAttachmentRepository), new(repomocks.MockApplicationRepository))

		got, err := svc.Upload(context.Background(), "app-1", nil, "f.pdf", "application/pdf", 1)

		assert.ErrorIs(t, err, ErrReaderNil)
		assert.Nil(t, got)
	})
}

func TestAttachmentService_ListByApplication(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(repomocks.MockAttachmentRepository)
		apps := new(repomocks.MockApplicationRepository)
		svc := NewAttachmentService(new(storagemocks.MockStorage), repo, apps)

		apps.On("FindByID", mock.Anything, "app-1").Return(&model.Application{ID: "app-1"}, nil)
		repo.On("ListByApplication", mock.Anything, "app-1").Return([]model.Attachment{{ID: "att-1"}}, nil)

		got, err := svc.ListByApplication(context.Background(), "app-1")

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown application", func(t *testing.T) {
		repo := new(repomocks.MockAttachmentRepository)
		apps := new(repomocks.MockApplicationRepository)
		svc := NewAttachmentService(new(storagemocks.MockStorage), repo, apps)

		apps.On("FindByID", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

		got, err := svc.ListByApplication(context.Background(), "ghost")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestAttachmentService_DownloadURL(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(repomocks.MockAttachmentRepository)
		svc := NewAttachmentService(store, repo, new(repomocks.MockApplicationRepository))

		repo.On("FindByID", mock.Anything, "att-1").
			Return(&model.Attachment{ID: "att-1", StoragePath: "applications/app-1/x.pdf"}, nil)
		store.On("PresignGet", mock.Anything, "applications/app-1/x.pdf", 15*time.Minute).
			Return("https://minio.local/presigned", nil)

		url, err := svc.DownloadURL(context.Background(), "att-1")

		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/presigned", url)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(repomocks.MockAttachmentRepository)
		svc := NewAttachmentService(new(storagemocks.MockStorage), repo, new(repomocks.MockApplicationRepository))

		repo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

		url, err := svc.DownloadURL(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, url)
	})
}

func TestAttachmentService_Delete(t *testing.T) {
	t.Run("storage then row", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(repomocks.MockAttachmentRepository)
		svc := NewAttachmentService(store, repo, new(repomocks.MockApplicationRepository))

		repo.On("FindByID", mock.Anything, "att-1").
			Return(&model.Attachment{ID: "att-1", StoragePath: "applications/app-1/x.pdf"}, nil)
		store.On("Delete", mock.Anything, "applications/app-1/x.pdf").Return(nil)
		repo.On("Delete", mock.Anything, "att-1").Return(nil)

		err := svc.Delete(context.Background(), "att-1")

		assert.NoError(t, err)
		store.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("storage failure keeps row", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		repo := new(repomocks.MockAttachmentRepository)
		svc := NewAttachmentService(store, repo, new(repomocks.MockApplicationRepository))

		repo.On("FindByID", mock.Anything, "att-1").
			Return(&model.Attachment{ID: "att-1", StoragePath: "p"}, nil)
		store.On("Delete", mock.Anything, "p").Return(errors.New("storage down"))

		err := svc.Delete(context.Background(), "att-1")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, "att-1")
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(repomocks.MockAttachmentRepository)
		svc := NewAttachmentService(new(storagemocks.MockStorage), repo, new(repomocks.MockApplicationRepository))

		repo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

		err := svc.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
