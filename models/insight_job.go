package models

import (
	"time"

	"github.com/google/uuid"
)

// InsightJobStatus represents the status of an insight generation job
type InsightJobStatus string

const (
	InsightStatusPending    InsightJobStatus = "pending"
	InsightStatusInProgress InsightJobStatus = "in_progress"
	InsightStatusCompleted  InsightJobStatus = "completed"
	InsightStatusFailed     InsightJobStatus = "failed"
)

// InsightJob tracks background generation of a diagnostic summary for a
// submitted user_tool. Clients poll it after receiving a 202.
type InsightJob struct {
	ID           uuid.UUID        `json:"id"`
	UserToolID   int64            `json:"user_tool_id"`
	Status       InsightJobStatus `json:"status"`
	Summary      *string          `json:"summary,omitempty"`
	ErrorMessage *string          `json:"error_message,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
}
