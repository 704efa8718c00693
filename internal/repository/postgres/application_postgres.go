package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"lendapi/internal/model"
	"lendapi/internal/repository"
)

const applicationColumns = `id, application_no, applicant_name, industry, loan_amount, loan_amount_display,
		legal_entity_type, application_stage, documents_status, application_status, review_status,
		is_overdue, analysis, created_at, updated_at`

// ApplicationPostgres is a PostgreSQL implementation of
// repository.ApplicationRepository. Scalar workflow fields are columns; the
// analysis payload is one JSONB column. No business logic here.
type ApplicationPostgres struct {
	db *sql.DB
}

// NewApplicationPostgres creates a new ApplicationPostgres repository.
func NewApplicationPostgres(db *sql.DB) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

var _ repository.ApplicationRepository = (*ApplicationPostgres)(nil)

func scanApplication(row interface{ Scan(...any) error }) (*model.Application, error) {
	var (
		app      model.Application
		analysis []byte
	)
	if err := row.Scan(
		&app.ID,
		&app.ApplicationNo,
		&app.ApplicantName,
		&app.Industry,
		&app.LoanAmount,
		&app.LoanAmountDisplay,
		&app.LegalEntityType,
		&app.ApplicationStage,
		&app.DocumentsStatus,
		&app.ApplicationStatus,
		&app.ReviewStatus,
		&app.IsOverdue,
		&analysis,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(analysis, &app.Analysis); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	return &app, nil
}

// List returns applications newest-first, optionally filtered by a
// case-insensitive substring across applicant name, application number, and
// industry.
func (r *ApplicationPostgres) List(ctx context.Context, q repository.ListQuery) ([]model.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications`
	args := []any{}
	if q.Search != "" {
		query += `
		WHERE applicant_name ILIKE $1 OR application_no ILIKE $1 OR industry ILIKE $1`
		args = append(args, "%"+q.Search+"%")
	}
	query += fmt.Sprintf(`
		ORDER BY created_at DESC, id DESC
		LIMIT $%d`, len(args)+1)
	args = append(args, q.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]model.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByID fetches a single application by its ID.
func (r *ApplicationPostgres) FindByID(ctx context.Context, id string) (*model.Application, error) {
	const q = `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE id = $1`
	return scanApplication(r.db.QueryRowContext(ctx, q, id))
}

// UpdateReviewStatus sets the review status and updated_at on one row and
// returns the updated record. sql.ErrNoRows when the id does not exist.
func (r *ApplicationPostgres) UpdateReviewStatus(ctx context.Context, id, status string, updatedAt time.Time) (*model.Application, error) {
	const q = `
		UPDATE applications
		SET review_status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + applicationColumns
	return scanApplication(r.db.QueryRowContext(ctx, q, id, status, updatedAt))
}

// DeleteAll removes every application row.
func (r *ApplicationPostgres) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications`)
	return err
}

// InsertBatch inserts all records in a single transaction so a reseed is
// all-or-nothing.
func (r *ApplicationPostgres) InsertBatch(ctx context.Context, apps []model.Application) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	for _, app := range apps {
		analysis, err := json.Marshal(app.Analysis)
		if err != nil {
			return fmt.Errorf("encode analysis: %w", err)
		}
		if _, err := tx.ExecContext(ctx, q,
			app.ID,
			app.ApplicationNo,
			app.ApplicantName,
			app.Industry,
			app.LoanAmount,
			app.LoanAmountDisplay,
			app.LegalEntityType,
			app.ApplicationStage,
			app.DocumentsStatus,
			app.ApplicationStatus,
			app.ReviewStatus,
			app.IsOverdue,
			analysis,
			app.CreatedAt,
			app.UpdatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// StatusCounts aggregates the entire collection grouped by review status and
// overdue flag. List filters never affect this.
func (r *ApplicationPostgres) StatusCounts(ctx context.Context) ([]repository.StatusCount, error) {
	const q = `
		SELECT review_status, is_overdue, COUNT(*)
		FROM applications
		GROUP BY review_status, is_overdue`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]repository.StatusCount, 0)
	for rows.Next() {
		var c repository.StatusCount
		if err := rows.Scan(&c.ReviewStatus, &c.IsOverdue, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
