package repository

import (
	"context"
	"errors"
	"time"

	"mindset-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsightJobRepository handles database operations for insight jobs
type InsightJobRepository struct {
	db Querier
}

// NewInsightJobRepository creates a new insight job repository
func NewInsightJobRepository(db *pgxpool.Pool) *InsightJobRepository {
	return &InsightJobRepository{db: db}
}

// Create creates a new insight job
func (r *InsightJobRepository) Create(ctx context.Context, job *models.InsightJob) error {
	query := `
		INSERT INTO insight_jobs (user_tool_id, status)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query, job.UserToolID, job.Status).Scan(
		&job.ID,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
}

// GetByID retrieves an insight job by ID
func (r *InsightJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InsightJob, error) {
	job := &models.InsightJob{}
	query := `
		SELECT id, user_tool_id, status, summary, error_message,
			created_at, updated_at, completed_at
		FROM insight_jobs
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.UserToolID,
		&job.Status,
		&job.Summary,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.CompletedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateStatus updates the status of an insight job
func (r *InsightJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InsightJobStatus) error {
	query := `
		UPDATE insight_jobs SET
			status = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, status)
	return err
}

// Complete marks an insight job as completed and stores the summary
func (r *InsightJobRepository) Complete(ctx context.Context, id uuid.UUID, summary string) error {
	now := time.Now()
	query := `
		UPDATE insight_jobs SET
			status = $2,
			summary = $3,
			completed_at = $4,
			updated_at = $4
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.InsightStatusCompleted, summary, now)
	return err
}

// Fail marks an insight job as failed
func (r *InsightJobRepository) Fail(ctx context.Context, id uuid.UUID, errorMessage string) error {
	query := `
		UPDATE insight_jobs SET
			status = $2,
			error_message = $3,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.InsightStatusFailed, errorMessage)
	return err
}
