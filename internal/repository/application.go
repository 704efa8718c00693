// Package repository defines persistence interfaces consumed by the service
// layer. Implementations live in subpackages (postgres) and mocks in mocks/.
package repository

import (
	"context"
	"time"

	"lendapi/internal/model"
)

// ListQuery filters and bounds an application listing.
// Search is a case-insensitive substring matched against applicant name,
// application number, and industry; empty means no filter.
type ListQuery struct {
	Search string
	Limit  int
}

// StatusCount is one (review_status, is_overdue) group with its row count,
// computed over the entire collection.
type StatusCount struct {
	ReviewStatus string
	IsOverdue    bool
	Count        int
}

// ApplicationRepository is the persistence contract for loan applications.
type ApplicationRepository interface {
	List(ctx context.Context, q ListQuery) ([]model.Application, error)
	FindByID(ctx context.Context, id string) (*model.Application, error)
	// UpdateReviewStatus sets the status and updated_at on one row and returns
	// the updated record. sql.ErrNoRows when the id is unknown.
	UpdateReviewStatus(ctx context.Context, id, status string, updatedAt time.Time) (*model.Application, error)
	DeleteAll(ctx context.Context) error
	// InsertBatch inserts all records in a single transaction.
	InsertBatch(ctx context.Context, apps []model.Application) error
	// StatusCounts aggregates the whole collection grouped by review status
	// and overdue flag.
	StatusCounts(ctx context.Context) ([]StatusCount, error)
}
