package repository

import (
	"context"
	"errors"

	"mindset-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserToolRepository handles database operations for user_tools
type UserToolRepository struct {
	db Querier
}

// NewUserToolRepository creates a new user_tool repository
func NewUserToolRepository(db *pgxpool.Pool) *UserToolRepository {
	return &UserToolRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *UserToolRepository) WithTx(tx pgx.Tx) *UserToolRepository {
	return &UserToolRepository{db: tx}
}

// Create inserts a new user_tool row linking a user to a diagnostic tool.
// Start and completion dates default to the current date, matching the
// single-shot intake flow where a submission is complete on arrival.
func (r *UserToolRepository) Create(ctx context.Context, userTool *models.UserTool) error {
	query := `
		INSERT INTO user_tools (user_id, tool_id)
		VALUES ($1, $2)
		RETURNING user_tool_id, start_date, completion_date`

	return r.db.QueryRow(ctx, query, userTool.UserID, userTool.ToolID).Scan(
		&userTool.ID,
		&userTool.StartDate,
		&userTool.CompletionDate,
	)
}

// GetByID retrieves a user_tool by ID
func (r *UserToolRepository) GetByID(ctx context.Context, id int64) (*models.UserTool, error) {
	userTool := &models.UserTool{}
	query := `
		SELECT user_tool_id, user_id, tool_id, start_date, completion_date
		FROM user_tools
		WHERE user_tool_id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&userTool.ID,
		&userTool.UserID,
		&userTool.ToolID,
		&userTool.StartDate,
		&userTool.CompletionDate,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return userTool, nil
}

// ListByUserID retrieves all user_tools for a user, newest first
func (r *UserToolRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.UserTool, error) {
	query := `
		SELECT user_tool_id, user_id, tool_id, start_date, completion_date
		FROM user_tools
		WHERE user_id = $1
		ORDER BY user_tool_id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userTools []*models.UserTool
	for rows.Next() {
		userTool := &models.UserTool{}
		err := rows.Scan(
			&userTool.ID,
			&userTool.UserID,
			&userTool.ToolID,
			&userTool.StartDate,
			&userTool.CompletionDate,
		)
		if err != nil {
			return nil, err
		}
		userTools = append(userTools, userTool)
	}

	return userTools, rows.Err()
}
