package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lendapi/internal/model"
	"lendapi/internal/repository"
	"lendapi/internal/seed"
)

const defaultListLimit = 100

// StatusBucket is one dashboard stats bucket: total rows plus how many of
// them are overdue.
type StatusBucket struct {
	Count   int `json:"count"`
	Overdue int `json:"overdue"`
}

// ReviewStats summarizes the whole collection by review stage. Approved and
// Rejected fold into the completed bucket.
type ReviewStats struct {
	Pending   StatusBucket `json:"pending"`
	Awaiting  StatusBucket `json:"awaiting"`
	Completed StatusBucket `json:"completed"`
}

// ApplicationListResult is the service-level DTO for a listing plus the
// dashboard stats.
type ApplicationListResult struct {
	Applications []model.Application `json:"applications"`
	Stats        ReviewStats         `json:"stats"`
}

// SeedResult reports the outcome of a reseed.
type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ApplicationService defines the use cases for the loan-application workflow.
type ApplicationService interface {
	// Seed wipes the collection and inserts the canonical demo dataset.
	Seed(ctx context.Context) (*SeedResult, error)

	// List returns applications (optionally filtered by a search term) plus
	// stats computed over the entire collection regardless of the filter.
	List(ctx context.Context, search string) (*ApplicationListResult, error)

	// Get returns a single application by its ID.
	Get(ctx context.Context, id string) (*model.Application, error)

	// UpdateReviewStatus moves an application to a new review state and
	// returns the updated record.
	UpdateReviewStatus(ctx context.Context, id, status string) (*model.Application, error)
}

type applicationService struct {
	repo repository.ApplicationRepository
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(repo repository.ApplicationRepository) ApplicationService {
	return &applicationService{repo: repo}
}

func (s *applicationService) Seed(ctx context.Context) (*SeedResult, error) {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear applications: %w", err)
	}
	apps := seed.Applications()
	if err := s.repo.InsertBatch(ctx, apps); err != nil {
		return nil, fmt.Errorf("insert seed data: %w", err)
	}
	return &SeedResult{
		Message: "Database seeded successfully",
		Count:   len(apps),
	}, nil
}

func (s *applicationService) List(ctx context.Context, search string) (*ApplicationListResult, error) {
	apps, err := s.repo.List(ctx, repository.ListQuery{Search: search, Limit: defaultListLimit})
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	var stats ReviewStats
	for _, c := range counts {
		var bucket *StatusBucket
		switch c.ReviewStatus {
		case model.ReviewStatusPending:
			bucket = &stats.Pending
		case model.ReviewStatusAwaiting:
			bucket = &stats.Awaiting
		case model.ReviewStatusApproved, model.ReviewStatusRejected:
			bucket = &stats.Completed
		default:
			continue
		}
		bucket.Count += c.Count
		if c.IsOverdue {
			bucket.Overdue += c.Count
		}
	}

	return &ApplicationListResult{Applications: apps, Stats: stats}, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (*model.Application, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (s *applicationService) UpdateReviewStatus(ctx context.Context, id, status string) (*model.Application, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if !model.ValidReviewStatus(status) {
		return nil, ErrInvalidReviewStatus
	}
	app, err := s.repo.UpdateReviewStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return app, nil
}
