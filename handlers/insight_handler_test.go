package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mindset-backend/models"
	"mindset-backend/repository"
	"mindset-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInsightService struct {
	jobID     uuid.UUID
	createErr error
	job       *models.InsightJob
	getErr    error
	processed chan uuid.UUID
}

func (s *stubInsightService) CreateInsight(context.Context, service.CreateInsightRequest) (*service.CreateInsightResult, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &service.CreateInsightResult{JobID: s.jobID}, nil
}

func (s *stubInsightService) ProcessInsight(_ context.Context, jobID uuid.UUID) error {
	if s.processed != nil {
		s.processed <- jobID
	}
	return nil
}

func (s *stubInsightService) GetJob(context.Context, uuid.UUID) (*models.InsightJob, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.job, nil
}

func newInsightRouter(svc InsightService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewInsightHandler(svc)
	r.POST("/api/submissions/:id/insights", h.CreateInsight)
	r.GET("/api/insights/:id", h.GetInsight)
	return r
}

func TestCreateInsightAccepted(t *testing.T) {
	svc := &stubInsightService{
		jobID:     uuid.New(),
		processed: make(chan uuid.UUID, 1),
	}
	r := newInsightRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/submissions/42/insights", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			JobID  uuid.UUID `json:"job_id"`
			Status string    `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, svc.jobID, resp.Data.JobID)
	assert.Equal(t, "pending", resp.Data.Status)

	// Processing is kicked off in the background
	select {
	case processed := <-svc.processed:
		assert.Equal(t, svc.jobID, processed)
	case <-time.After(time.Second):
		t.Fatal("ProcessInsight was not invoked")
	}
}

func TestCreateInsightUnknownSubmission(t *testing.T) {
	r := newInsightRouter(&stubInsightService{createErr: repository.ErrNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/submissions/999/insights", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w.Body.Bytes()))
}

func TestCreateInsightDisabled(t *testing.T) {
	r := newInsightRouter(&stubInsightService{createErr: service.ErrInsightsDisabled})

	req := httptest.NewRequest(http.MethodPost, "/api/submissions/42/insights", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "INSIGHTS_DISABLED", errorCode(t, w.Body.Bytes()))
}

func TestGetInsight(t *testing.T) {
	summary := "A growth-leaning profile."
	job := &models.InsightJob{
		ID:         uuid.New(),
		UserToolID: 42,
		Status:     models.InsightStatusCompleted,
		Summary:    &summary,
	}
	r := newInsightRouter(&stubInsightService{job: job})

	req := httptest.NewRequest(http.MethodGet, "/api/insights/"+job.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data *models.InsightJob `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.InsightStatusCompleted, resp.Data.Status)
	require.NotNil(t, resp.Data.Summary)
	assert.Equal(t, summary, *resp.Data.Summary)
}

func TestGetInsightInvalidID(t *testing.T) {
	r := newInsightRouter(&stubInsightService{})

	req := httptest.NewRequest(http.MethodGet, "/api/insights/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, w.Body.Bytes()))
}

func TestGetInsightNotFound(t *testing.T) {
	r := newInsightRouter(&stubInsightService{getErr: repository.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/insights/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
