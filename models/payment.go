package models

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment represents a monetary record linked to a user.
// The intake flow never writes payments; they are recorded separately.
type Payment struct {
	ID            int64         `json:"payment_id"`
	UserID        int64         `json:"user_id"`
	PaymentDate   time.Time     `json:"payment_date"`
	PaymentAmount float64       `json:"payment_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}
