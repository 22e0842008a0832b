package repository

import (
	"context"

	"mindset-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db Querier
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (user_id, payment_date, payment_amount, payment_status)
		VALUES ($1, $2, $3, $4)
		RETURNING payment_id`

	return r.db.QueryRow(
		ctx, query,
		payment.UserID,
		payment.PaymentDate,
		payment.PaymentAmount,
		payment.PaymentStatus,
	).Scan(&payment.ID)
}

// ListByUserID retrieves all payments for a user, newest first
func (r *PaymentRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Payment, error) {
	query := `
		SELECT payment_id, user_id, payment_date, payment_amount, payment_status
		FROM payments
		WHERE user_id = $1
		ORDER BY payment_date DESC, payment_id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.PaymentDate,
			&payment.PaymentAmount,
			&payment.PaymentStatus,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
