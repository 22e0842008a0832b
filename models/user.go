package models

import "time"

// User represents a respondent captured by the intake form
type User struct {
	ID                 int64     `json:"user_id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	TelephoneNumber    string    `json:"telephone_number"`
	Email              string    `json:"email"`
	ProfessionalStatus string    `json:"professional_status"`
	Industry           string    `json:"industry"`
	Organization       string    `json:"organization"`
	JobLevel           string    `json:"job_level"`
	Department         string    `json:"department"`
	Location           string    `json:"location"`
	CreatedAt          time.Time `json:"created_at"`
}
