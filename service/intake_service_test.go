package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"mindset-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmissionStore struct {
	created   *models.Submission
	createErr error
	sub       *models.Submission
	getErr    error
}

func (s *stubSubmissionStore) CreateSubmission(_ context.Context, sub *models.Submission) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = sub
	sub.User.ID = 7
	sub.UserTool.ID = 42
	sub.UserTool.UserID = sub.User.ID
	for i, answer := range sub.Answers {
		answer.ID = int64(i + 1)
		answer.UserToolID = sub.UserTool.ID
	}
	return nil
}

func (s *stubSubmissionStore) GetSubmission(_ context.Context, _ int64) (*models.Submission, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.sub, nil
}

type stubArchiver struct {
	keys []string
	err  error
}

func (a *stubArchiver) Store(_ context.Context, key string, _ io.Reader) error {
	if a.err != nil {
		return a.err
	}
	a.keys = append(a.keys, key)
	return nil
}

func (a *stubArchiver) Load(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (a *stubArchiver) Delete(context.Context, string) error {
	return nil
}

func validRequest() SubmitFormRequest {
	return SubmitFormRequest{
		FullName:           "Jane Doe",
		TelephoneNumber:    "+44 20 7946 0000",
		EmailAddress:       "jane.doe@example.com",
		ProfessionalStatus: "Employed",
		Industry:           "Finance",
		Organisation:       "Acme Ltd",
		JobLevel:           "Manager",
		Department:         "Risk",
		Location:           "London",
	}
}

func TestQuestionID(t *testing.T) {
	tests := []struct {
		step  int
		index int
		want  int64
	}{
		{2, 0, 1},
		{2, 1, 2},
		{2, 8, 9},
		{3, 0, 10},
		{4, 4, 23},
		{8, 0, 55},
		{8, 8, 63},
		// The formula is positional only: it happily produces ids
		// beyond the seeded bank
		{8, 10, 65},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QuestionID(tt.step, tt.index), "step %d index %d", tt.step, tt.index)
	}
}

func TestSplitFullName(t *testing.T) {
	first, last, err := SplitFullName("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Doe", last)

	// Everything after the first space belongs to the last name
	first, last, err = SplitFullName("Mary Jane Watson")
	require.NoError(t, err)
	assert.Equal(t, "Mary", first)
	assert.Equal(t, "Jane Watson", last)

	_, _, err = SplitFullName("Janedoe")
	assert.ErrorIs(t, err, ErrInvalidFullName)
}

func TestSubmitFormPersistsOneUserOneUserToolAndAnswers(t *testing.T) {
	store := &stubSubmissionStore{}
	svc := NewIntakeService(WithSubmissionStore(store))

	req := validRequest()
	req.Steps[0] = []int{1, 2} // step2Data

	result, err := svc.SubmitForm(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, store.created)

	user := store.created.User
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "Acme Ltd", user.Organization)

	assert.Equal(t, int64(DiagnosticToolID), store.created.UserTool.ToolID)

	answers := store.created.Answers
	require.Len(t, answers, 2)
	assert.Equal(t, int64(1), answers[0].QuestionID)
	assert.Equal(t, "1", answers[0].AnswerText)
	assert.Equal(t, int64(2), answers[1].QuestionID)
	assert.Equal(t, "2", answers[1].AnswerText)

	assert.Equal(t, int64(7), result.UserID)
	assert.Equal(t, int64(42), result.UserToolID)
	assert.Equal(t, 2, result.AnswerCount)
}

func TestSubmitFormNumbersAnswersAcrossAllSteps(t *testing.T) {
	store := &stubSubmissionStore{}
	svc := NewIntakeService(WithSubmissionStore(store))

	req := validRequest()
	for i := range req.Steps {
		req.Steps[i] = []int{5, 6, 7}
	}

	result, err := svc.SubmitForm(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, StepCount*3, result.AnswerCount)

	answers := store.created.Answers
	require.Len(t, answers, StepCount*3)
	for offset := 0; offset < StepCount; offset++ {
		step := FirstStep + offset
		for index := 0; index < 3; index++ {
			answer := answers[offset*3+index]
			assert.Equal(t, QuestionID(step, index), answer.QuestionID)
		}
	}
}

func TestSubmitFormRejectsFullNameWithoutSpace(t *testing.T) {
	store := &stubSubmissionStore{}
	svc := NewIntakeService(WithSubmissionStore(store))

	req := validRequest()
	req.FullName = "Janedoe"

	_, err := svc.SubmitForm(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidFullName)
	assert.Nil(t, store.created, "no rows may be written on validation failure")
}

func TestSubmitFormPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &stubSubmissionStore{createErr: storeErr}
	archive := &stubArchiver{}
	svc := NewIntakeService(WithSubmissionStore(store), WithArchiver(archive))

	_, err := svc.SubmitForm(context.Background(), validRequest())
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, archive.keys, "failed submissions must not be archived")
}

func TestSubmitFormArchivesAcceptedSubmission(t *testing.T) {
	store := &stubSubmissionStore{}
	archive := &stubArchiver{}
	svc := NewIntakeService(WithSubmissionStore(store), WithArchiver(archive))

	_, err := svc.SubmitForm(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, archive.keys, 1)
	assert.True(t, strings.HasPrefix(archive.keys[0], "submissions/"))
	assert.True(t, strings.HasSuffix(archive.keys[0], ".json"))
}

func TestSubmitFormArchiveFailureDoesNotFailRequest(t *testing.T) {
	store := &stubSubmissionStore{}
	archive := &stubArchiver{err: errors.New("bucket gone")}
	svc := NewIntakeService(WithSubmissionStore(store), WithArchiver(archive))

	result, err := svc.SubmitForm(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestSubmitFormIsNotIdempotent(t *testing.T) {
	store := &stubSubmissionStore{}
	svc := NewIntakeService(WithSubmissionStore(store))

	req := validRequest()
	req.Steps[0] = []int{3}

	_, err := svc.SubmitForm(context.Background(), req)
	require.NoError(t, err)
	first := store.created

	req.EmailAddress = "jane.doe+again@example.com"
	_, err = svc.SubmitForm(context.Background(), req)
	require.NoError(t, err)

	// A fresh submission builds an entirely new row set
	assert.NotSame(t, first, store.created)
	assert.Equal(t, first.Answers[0].QuestionID, store.created.Answers[0].QuestionID)
}
