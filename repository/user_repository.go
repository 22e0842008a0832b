package repository

import (
	"context"
	"errors"

	"mindset-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *UserRepository) WithTx(tx pgx.Tx) *UserRepository {
	return &UserRepository{db: tx}
}

// Create inserts a new user. Returns ErrEmailTaken when the email is
// already registered.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			first_name, last_name, telephone_number, email,
			professional_status, industry, organization, job_level,
			department, location
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING user_id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		user.FirstName,
		user.LastName,
		user.TelephoneNumber,
		user.Email,
		user.ProfessionalStatus,
		user.Industry,
		user.Organization,
		user.JobLevel,
		user.Department,
		user.Location,
	).Scan(&user.ID, &user.CreatedAt)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT user_id, first_name, last_name, telephone_number, email,
			professional_status, industry, organization, job_level,
			department, location, created_at
		FROM users
		WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.TelephoneNumber,
		&user.Email,
		&user.ProfessionalStatus,
		&user.Industry,
		&user.Organization,
		&user.JobLevel,
		&user.Department,
		&user.Location,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT user_id, first_name, last_name, telephone_number, email,
			professional_status, industry, organization, job_level,
			department, location, created_at
		FROM users
		WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.TelephoneNumber,
		&user.Email,
		&user.ProfessionalStatus,
		&user.Industry,
		&user.Organization,
		&user.JobLevel,
		&user.Department,
		&user.Location,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
