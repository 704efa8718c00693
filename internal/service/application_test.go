package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lendapi/internal/model"
	"lendapi/internal/repository"
	"lendapi/internal/repository/mocks"
)

func TestApplicationService_Seed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		repo.On("DeleteAll", mock.Anything).Return(nil)
		repo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(apps []model.Application) bool {
			return len(apps) == 8
		})).Return(nil)

		res, err := svc.Seed(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 8, res.Count)
		assert.Equal(t, "Database seeded successfully", res.Message)
		repo.AssertExpectations(t)
	})

	t.Run("delete fails", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		repo.On("DeleteAll", mock.Anything).Return(errors.New("db down"))

		res, err := svc.Seed(context.Background())

		assert.Error(t, err)
		assert.Nil(t, res)
		repo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
	})

	t.Run("insert fails", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		repo.On("DeleteAll", mock.Anything).Return(nil)
		repo.On("InsertBatch", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

		res, err := svc.Seed(context.Background())

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestApplicationService_List(t *testing.T) {
	apps := []model.Application{
		{ID: "a1", ApplicantName: "Acme", ReviewStatus: model.ReviewStatusPending},
	}
	counts := []repository.StatusCount{
		{ReviewStatus: model.ReviewStatusPending, IsOverdue: true, Count: 2},
		{ReviewStatus: model.ReviewStatusPending, IsOverdue: false, Count: 2},
		{ReviewStatus: model.ReviewStatusAwaiting, IsOverdue: true, Count: 1},
		{ReviewStatus: model.ReviewStatusAwaiting, IsOverdue: false, Count: 1},
		{ReviewStatus: model.ReviewStatusApproved, IsOverdue: false, Count: 1},
		{ReviewStatus: model.ReviewStatusRejected, IsOverdue: false, Count: 1},
	}

	t.Run("stats aggregate whole collection", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		repo.On("List", mock.Anything, repository.ListQuery{Search: "acme", Limit: 100}).Return(apps, nil)
		repo.On("StatusCounts", mock.Anything).Return(counts, nil)

		res, err := svc.List(context.Background(), "acme")

		require.NoError(t, err)
		assert.Len(t, res.Applications, 1)
		assert.Equal(t, StatusBucket{Count: 4, Overdue: 2}, res.Stats.Pending)
		assert.Equal(t, StatusBucket{Count: 2, Overdue: 1}, res.Stats.Awaiting)
		assert.Equal(t, StatusBucket{Count: 2, Overdue: 0}, res.Stats.Completed)
		repo.AssertExpectations(t)
	})

	t.Run("list error", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		res, err := svc.List(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("stats error", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		repo.On("List", mock.Anything, mock.Anything).Return(apps, nil)
		repo.On("StatusCounts", mock.Anything).Return(nil, errors.New("boom"))

		res, err := svc.List(context.Background(), "")

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestApplicationService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		app := &model.Application{ID: "a1"}
		repo.On("FindByID", mock.Anything, "a1").Return(app, nil)

		got, err := svc.Get(context.Background(), "a1")

		require.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		repo.On("FindByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

		got, err := svc.Get(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("empty id", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		got, err := svc.Get(context.Background(), "")

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, got)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestApplicationService_UpdateReviewStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		updated := &model.Application{ID: "a1", ReviewStatus: model.ReviewStatusApproved}
		repo.On("UpdateReviewStatus", mock.Anything, "a1", model.ReviewStatusApproved, mock.MatchedBy(func(ts time.Time) bool {
			return time.Since(ts) < time.Minute
		})).Return(updated, nil)

		got, err := svc.UpdateReviewStatus(context.Background(), "a1", model.ReviewStatusApproved)

		require.NoError(t, err)
		assert.Equal(t, model.ReviewStatusApproved, got.ReviewStatus)
		repo.AssertExpectations(t)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		got, err := svc.UpdateReviewStatus(context.Background(), "a1", "Escalated")

		assert.ErrorIs(t, err, ErrInvalidReviewStatus)
		assert.Nil(t, got)
		repo.AssertNotCalled(t, "UpdateReviewStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		repo.On("UpdateReviewStatus", mock.Anything, "missing", model.ReviewStatusRejected, mock.Anything).
			Return(nil, sql.ErrNoRows)

		got, err := svc.UpdateReviewStatus(context.Background(), "missing", model.ReviewStatusRejected)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("empty id", func(t *testing.T) {
		repo := new(mocks.MockApplicationRepository)
		svc := NewApplicationService(repo)

		got, err := svc.UpdateReviewStatus(context.Background(), "", model.ReviewStatusApproved)

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, got)
	})
}
