package repository

import (
	"context"
	"errors"

	"mindset-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionRepository handles database operations for questions
type QuestionRepository struct {
	db Querier
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a new question
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (tool_id, question_text, question_type)
		VALUES ($1, $2, $3)
		RETURNING question_id`

	return r.db.QueryRow(
		ctx, query,
		question.ToolID,
		question.QuestionText,
		question.QuestionType,
	).Scan(&question.ID)
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	question := &models.Question{}
	query := `
		SELECT question_id, tool_id, question_text, question_type
		FROM questions
		WHERE question_id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&question.ID,
		&question.ToolID,
		&question.QuestionText,
		&question.QuestionType,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return question, nil
}

// ListByToolID retrieves a tool's question bank in id order. The intake
// numbering contract depends on this ordering matching the seeded layout.
func (r *QuestionRepository) ListByToolID(ctx context.Context, toolID int64) ([]*models.Question, error) {
	query := `
		SELECT question_id, tool_id, question_text, question_type
		FROM questions
		WHERE tool_id = $1
		ORDER BY question_id`

	rows, err := r.db.Query(ctx, query, toolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		question := &models.Question{}
		err := rows.Scan(
			&question.ID,
			&question.ToolID,
			&question.QuestionText,
			&question.QuestionType,
		)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}
