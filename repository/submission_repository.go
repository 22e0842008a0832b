package repository

import (
	"context"
	"fmt"

	"mindset-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubmissionRepository persists a whole intake submission. The three writes
// (user, user_tool, answers) run inside one transaction so a failure at any
// point leaves no orphaned rows.
type SubmissionRepository struct {
	db        *pgxpool.Pool
	users     *UserRepository
	userTools *UserToolRepository
	answers   *AnswerRepository
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db:        db,
		users:     NewUserRepository(db),
		userTools: NewUserToolRepository(db),
		answers:   NewAnswerRepository(db),
	}
}

// CreateSubmission writes the user, then the user_tool referencing the
// generated user id, then the answer batch referencing the generated
// user_tool id. The order is a data dependency, not a choice: each phase
// needs the previous phase's generated identifier.
func (r *SubmissionRepository) CreateSubmission(ctx context.Context, sub *models.Submission) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.users.WithTx(tx).Create(ctx, sub.User); err != nil {
			return err
		}

		sub.UserTool.UserID = sub.User.ID
		if err := r.userTools.WithTx(tx).Create(ctx, sub.UserTool); err != nil {
			return fmt.Errorf("failed to create user_tool: %w", err)
		}

		for _, answer := range sub.Answers {
			answer.UserToolID = sub.UserTool.ID
		}
		if err := r.answers.WithTx(tx).CreateBatch(ctx, sub.Answers); err != nil {
			return fmt.Errorf("failed to create answers: %w", err)
		}

		return nil
	})
}

// GetSubmission loads a full submission by user_tool id: the user_tool row,
// its user and its answers with question text
func (r *SubmissionRepository) GetSubmission(ctx context.Context, userToolID int64) (*models.Submission, error) {
	userTool, err := r.userTools.GetByID(ctx, userToolID)
	if err != nil {
		return nil, err
	}

	user, err := r.users.GetByID(ctx, userTool.UserID)
	if err != nil {
		return nil, err
	}

	answers, err := r.answers.ListByUserToolID(ctx, userToolID)
	if err != nil {
		return nil, err
	}

	return &models.Submission{
		User:     user,
		UserTool: userTool,
		Answers:  answers,
	}, nil
}
