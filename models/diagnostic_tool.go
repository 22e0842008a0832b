package models

// DiagnosticTool represents a named assessment definition
type DiagnosticTool struct {
	ID          int64   `json:"tool_id"`
	Name        string  `json:"tool_name"`
	Description *string `json:"tool_description,omitempty"`
}

// Question belongs to exactly one diagnostic tool.
// QuestionType is a free-form tag ("likert", "multiple_choice", ...),
// not enforced as an enum.
type Question struct {
	ID           int64  `json:"question_id"`
	ToolID       int64  `json:"tool_id"`
	QuestionText string `json:"question_text"`
	QuestionType string `json:"question_type"`
}
