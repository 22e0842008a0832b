package repository

import (
	"context"
	"errors"

	"mindset-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DiagnosticToolRepository handles database operations for diagnostic tools
type DiagnosticToolRepository struct {
	db Querier
}

// NewDiagnosticToolRepository creates a new diagnostic tool repository
func NewDiagnosticToolRepository(db *pgxpool.Pool) *DiagnosticToolRepository {
	return &DiagnosticToolRepository{db: db}
}

// GetByID retrieves a diagnostic tool by ID
func (r *DiagnosticToolRepository) GetByID(ctx context.Context, id int64) (*models.DiagnosticTool, error) {
	tool := &models.DiagnosticTool{}
	query := `
		SELECT tool_id, tool_name, tool_description
		FROM diagnostic_tools
		WHERE tool_id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&tool.ID,
		&tool.Name,
		&tool.Description,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return tool, nil
}

// List retrieves all diagnostic tools
func (r *DiagnosticToolRepository) List(ctx context.Context) ([]*models.DiagnosticTool, error) {
	query := `
		SELECT tool_id, tool_name, tool_description
		FROM diagnostic_tools
		ORDER BY tool_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []*models.DiagnosticTool
	for rows.Next() {
		tool := &models.DiagnosticTool{}
		err := rows.Scan(&tool.ID, &tool.Name, &tool.Description)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}
