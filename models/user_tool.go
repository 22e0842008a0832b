package models

import "time"

// UserTool records one completion instance of a diagnostic tool by a user
type UserTool struct {
	ID             int64      `json:"user_tool_id"`
	UserID         int64      `json:"user_id"`
	ToolID         int64      `json:"tool_id"`
	StartDate      time.Time  `json:"start_date"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

// Answer holds one submitted value for a question, stored as text.
// QuestionText is filled on read-back joins only and never persisted here.
type Answer struct {
	ID           int64  `json:"answer_id"`
	UserToolID   int64  `json:"user_tool_id"`
	QuestionID   int64  `json:"question_id"`
	AnswerText   string `json:"answer_text"`
	QuestionText string `json:"question_text,omitempty"`
}

// Submission groups the rows one intake request produces: the user, the
// user_tool linking them to the diagnostic tool, and the answers
type Submission struct {
	User     *User     `json:"user"`
	UserTool *UserTool `json:"user_tool"`
	Answers  []*Answer `json:"answers"`
}
