package repository

import (
	"context"

	"mindset-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnswerRepository handles database operations for answers
type AnswerRepository struct {
	db Querier
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AnswerRepository) WithTx(tx pgx.Tx) *AnswerRepository {
	return &AnswerRepository{db: tx}
}

// CreateBatch inserts all answers in one round trip. Insertion order is
// preserved, so generated answer_ids follow submission order.
func (r *AnswerRepository) CreateBatch(ctx context.Context, answers []*models.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	query := `
		INSERT INTO answers (user_tool_id, question_id, answer_text)
		VALUES ($1, $2, $3)
		RETURNING answer_id`

	batch := &pgx.Batch{}
	for _, answer := range answers {
		batch.Queue(query, answer.UserToolID, answer.QuestionID, answer.AnswerText)
	}

	results := r.db.SendBatch(ctx, batch)
	for _, answer := range answers {
		if err := results.QueryRow().Scan(&answer.ID); err != nil {
			results.Close()
			return err
		}
	}

	return results.Close()
}

// ListByUserToolID retrieves the answers for a submission, joined with the
// question text they reference, ordered by question
func (r *AnswerRepository) ListByUserToolID(ctx context.Context, userToolID int64) ([]*models.Answer, error) {
	query := `
		SELECT a.answer_id, a.user_tool_id, a.question_id, a.answer_text,
			q.question_text
		FROM answers a
		JOIN questions q ON q.question_id = a.question_id
		WHERE a.user_tool_id = $1
		ORDER BY a.question_id`

	rows, err := r.db.Query(ctx, query, userToolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []*models.Answer
	for rows.Next() {
		answer := &models.Answer{}
		err := rows.Scan(
			&answer.ID,
			&answer.UserToolID,
			&answer.QuestionID,
			&answer.AnswerText,
			&answer.QuestionText,
		)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}

	return answers, rows.Err()
}
