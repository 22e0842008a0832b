package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mindset-backend/models"

	"github.com/google/uuid"
)

var (
	// ErrInsightsDisabled is returned when no text generator is configured
	ErrInsightsDisabled = errors.New("insight generation is not configured")

	// ErrJobNotFound is returned when an insight job does not exist
	ErrJobNotFound = errors.New("insight job not found")
)

// InsightJobStore persists insight job state transitions
type InsightJobStore interface {
	Create(ctx context.Context, job *models.InsightJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InsightJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InsightJobStatus) error
	Complete(ctx context.Context, id uuid.UUID, summary string) error
	Fail(ctx context.Context, id uuid.UUID, errorMessage string) error
}

// TextGenerator produces free text from a prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ToolStore loads diagnostic tool definitions
type ToolStore interface {
	GetByID(ctx context.Context, id int64) (*models.DiagnosticTool, error)
}

// InsightService generates a short diagnostic summary for a submitted
// user_tool. Generation runs in the background; clients poll the job.
type InsightService struct {
	jobs      InsightJobStore
	store     SubmissionStore
	tools     ToolStore
	generator TextGenerator
}

// InsightServiceOption is a functional option for InsightService
type InsightServiceOption func(*InsightService)

// InsightWithJobStore sets the insight job store
func InsightWithJobStore(jobs InsightJobStore) InsightServiceOption {
	return func(s *InsightService) {
		s.jobs = jobs
	}
}

// InsightWithSubmissionStore sets the submission store
func InsightWithSubmissionStore(store SubmissionStore) InsightServiceOption {
	return func(s *InsightService) {
		s.store = store
	}
}

// InsightWithToolStore sets the diagnostic tool store
func InsightWithToolStore(tools ToolStore) InsightServiceOption {
	return func(s *InsightService) {
		s.tools = tools
	}
}

// InsightWithGenerator sets the text generator
func InsightWithGenerator(generator TextGenerator) InsightServiceOption {
	return func(s *InsightService) {
		s.generator = generator
	}
}

// NewInsightService creates a new insight service
func NewInsightService(opts ...InsightServiceOption) *InsightService {
	s := &InsightService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInsightRequest represents a request to generate insights for a
// submission
type CreateInsightRequest struct {
	UserToolID int64
}

// CreateInsightResult represents the created job
type CreateInsightResult struct {
	JobID uuid.UUID
}

// CreateInsight verifies the submission exists and records a pending job.
// The caller is expected to run ProcessInsight on a background goroutine.
func (s *InsightService) CreateInsight(ctx context.Context, req CreateInsightRequest) (*CreateInsightResult, error) {
	if s.jobs == nil || s.store == nil {
		return nil, errors.New("insight service not fully configured")
	}
	if s.generator == nil {
		return nil, ErrInsightsDisabled
	}

	if _, err := s.store.GetSubmission(ctx, req.UserToolID); err != nil {
		return nil, err
	}

	job := &models.InsightJob{
		UserToolID: req.UserToolID,
		Status:     models.InsightStatusPending,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create insight job: %w", err)
	}

	return &CreateInsightResult{JobID: job.ID}, nil
}

// GetJob retrieves an insight job by ID
func (s *InsightService) GetJob(ctx context.Context, id uuid.UUID) (*models.InsightJob, error) {
	if s.jobs == nil {
		return nil, errors.New("insight job store not set")
	}
	return s.jobs.GetByID(ctx, id)
}

// ProcessInsight loads the submission behind a job, prompts the generator
// and stores the summary. Any failure is recorded on the job row so pollers
// can see it.
func (s *InsightService) ProcessInsight(ctx context.Context, jobID uuid.UUID) error {
	if s.jobs == nil || s.store == nil || s.generator == nil {
		return errors.New("insight service not fully configured")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load insight job: %w", err)
	}

	sub, err := s.store.GetSubmission(ctx, job.UserToolID)
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to load submission: "+err.Error())
		return err
	}

	if err := s.jobs.UpdateStatus(ctx, jobID, models.InsightStatusInProgress); err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	prompt := s.buildPrompt(ctx, sub)

	summary, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.markJobFailed(ctx, jobID, "generation failed: "+err.Error())
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := s.jobs.Complete(ctx, jobID, summary); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	return nil
}

// buildPrompt assembles the generation prompt from the respondent profile
// and their answers
func (s *InsightService) buildPrompt(ctx context.Context, sub *models.Submission) string {
	toolName := "diagnostic assessment"
	if s.tools != nil {
		if tool, err := s.tools.GetByID(ctx, sub.UserTool.ToolID); err == nil {
			toolName = tool.Name
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an organisational psychologist. A respondent completed the %q survey.\n\n", toolName)
	fmt.Fprintf(&b, "Respondent profile: %s working in %s (%s), job level %s, department %s, located in %s.\n\n",
		sub.User.ProfessionalStatus,
		sub.User.Industry,
		sub.User.Organization,
		sub.User.JobLevel,
		sub.User.Department,
		sub.User.Location,
	)

	b.WriteString("Their answers (answer codes as submitted):\n")
	for _, answer := range sub.Answers {
		question := answer.QuestionText
		if question == "" {
			question = fmt.Sprintf("question %d", answer.QuestionID)
		}
		fmt.Fprintf(&b, "- %s: %s\n", question, answer.AnswerText)
	}

	b.WriteString("\nWrite a short, plain-language summary (at most 200 words) of what these answers suggest about the respondent's mindset. Do not repeat the raw answers.")
	return b.String()
}

// markJobFailed records a failure on the job row
func (s *InsightService) markJobFailed(ctx context.Context, jobID uuid.UUID, errorMessage string) {
	if err := s.jobs.Fail(ctx, jobID, errorMessage); err != nil {
		// Already in error handling; nothing left to do with this
		_ = err
	}
}
