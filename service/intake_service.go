package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"mindset-backend/models"
	"mindset-backend/storage"
)

const (
	// DiagnosticToolID is the single tool served by the intake endpoint
	DiagnosticToolID = 1

	// The survey spans steps 2 through 8. The seeded question bank lays
	// out exactly QuestionsPerStep sequential questions per step starting
	// at question_id 1; QuestionID encodes that contract. Changing either
	// constant without reseeding the questions table breaks the mapping.
	FirstStep        = 2
	LastStep         = 8
	QuestionsPerStep = 9
)

// StepCount is the number of answer arrays a submission carries
const StepCount = LastStep - FirstStep + 1

// ErrInvalidFullName is returned when a full name cannot be split into a
// first and last part
var ErrInvalidFullName = errors.New("full name must contain a first and last name separated by a space")

// QuestionID maps a step (2..8) and a 0-based position within that step's
// answer array to the pre-seeded question id
func QuestionID(step, index int) int64 {
	return int64((step-FirstStep)*QuestionsPerStep + index + 1)
}

// SplitFullName splits a full name on the first space. Everything after the
// first space, including further spaces, becomes the last name.
func SplitFullName(fullName string) (string, string, error) {
	first, last, found := strings.Cut(fullName, " ")
	if !found {
		return "", "", ErrInvalidFullName
	}
	return first, last, nil
}

// SubmissionStore persists and loads whole intake submissions
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub *models.Submission) error
	GetSubmission(ctx context.Context, userToolID int64) (*models.Submission, error)
}

// IntakeService handles business logic for form submissions
type IntakeService struct {
	store   SubmissionStore
	archive storage.Archiver
}

// IntakeServiceOption is a functional option for IntakeService
type IntakeServiceOption func(*IntakeService)

// WithSubmissionStore sets the submission store
func WithSubmissionStore(store SubmissionStore) IntakeServiceOption {
	return func(s *IntakeService) {
		s.store = store
	}
}

// WithArchiver sets the submission archive sink. A nil archiver disables
// archiving.
func WithArchiver(archive storage.Archiver) IntakeServiceOption {
	return func(s *IntakeService) {
		s.archive = archive
	}
}

// NewIntakeService creates a new intake service
func NewIntakeService(opts ...IntakeServiceOption) *IntakeService {
	s := &IntakeService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitFormRequest represents a validated form submission. Steps[0] holds
// the step-2 answer codes, Steps[StepCount-1] the step-8 ones.
type SubmitFormRequest struct {
	FullName           string
	TelephoneNumber    string
	EmailAddress       string
	ProfessionalStatus string
	Industry           string
	Organisation       string
	JobLevel           string
	Department         string
	Location           string
	Steps              [StepCount][]int
}

// SubmitFormResult represents the rows a submission produced
type SubmitFormResult struct {
	UserID      int64
	UserToolID  int64
	AnswerCount int
}

// SubmitForm splits the full name, maps every answer code to its question id
// and persists the user, user_tool and answers in one transaction. The
// archive snapshot afterwards is best-effort and never fails the request.
func (s *IntakeService) SubmitForm(ctx context.Context, req SubmitFormRequest) (*SubmitFormResult, error) {
	if s.store == nil {
		return nil, errors.New("submission store not set")
	}

	firstName, lastName, err := SplitFullName(req.FullName)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName:          firstName,
		LastName:           lastName,
		TelephoneNumber:    req.TelephoneNumber,
		Email:              req.EmailAddress,
		ProfessionalStatus: req.ProfessionalStatus,
		Industry:           req.Industry,
		Organization:       req.Organisation,
		JobLevel:           req.JobLevel,
		Department:         req.Department,
		Location:           req.Location,
	}

	userTool := &models.UserTool{
		ToolID: DiagnosticToolID,
	}

	answers := make([]*models.Answer, 0)
	for offset, values := range req.Steps {
		step := FirstStep + offset
		for index, value := range values {
			answers = append(answers, &models.Answer{
				QuestionID: QuestionID(step, index),
				AnswerText: strconv.Itoa(value),
			})
		}
	}

	sub := &models.Submission{
		User:     user,
		UserTool: userTool,
		Answers:  answers,
	}

	if err := s.store.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	s.archiveSubmission(ctx, sub)

	return &SubmitFormResult{
		UserID:      user.ID,
		UserToolID:  userTool.ID,
		AnswerCount: len(answers),
	}, nil
}

// GetSubmission loads a full submission by user_tool id
func (s *IntakeService) GetSubmission(ctx context.Context, userToolID int64) (*models.Submission, error) {
	if s.store == nil {
		return nil, errors.New("submission store not set")
	}
	return s.store.GetSubmission(ctx, userToolID)
}

// archiveSubmission writes a JSON snapshot of an accepted submission. The
// transaction has already committed, so failures are only logged.
func (s *IntakeService) archiveSubmission(ctx context.Context, sub *models.Submission) {
	if s.archive == nil {
		return
	}

	data, err := json.Marshal(sub)
	if err != nil {
		log.Printf("Warning: failed to encode submission %d for archiving: %v", sub.UserTool.ID, err)
		return
	}

	key := storage.SubmissionKey(time.Now(), sub.UserTool.ID)
	if err := s.archive.Store(ctx, key, bytes.NewReader(data)); err != nil {
		log.Printf("Warning: failed to archive submission %d: %v", sub.UserTool.ID, err)
	}
}
