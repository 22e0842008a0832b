package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindset-backend/models"
	"mindset-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubToolStore struct {
	tools []*models.DiagnosticTool
}

func (s *stubToolStore) GetByID(_ context.Context, id int64) (*models.DiagnosticTool, error) {
	for _, tool := range s.tools {
		if tool.ID == id {
			return tool, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubToolStore) List(context.Context) ([]*models.DiagnosticTool, error) {
	return s.tools, nil
}

type stubQuestionStore struct {
	questions []*models.Question
}

func (s *stubQuestionStore) ListByToolID(context.Context, int64) ([]*models.Question, error) {
	return s.questions, nil
}

func newToolRouter(tools ToolStore, questions QuestionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewToolHandler(tools, questions)
	r.GET("/api/tools", h.ListTools)
	r.GET("/api/tools/:id/questions", h.ListQuestions)
	return r
}

func TestListQuestions(t *testing.T) {
	tools := &stubToolStore{tools: []*models.DiagnosticTool{{ID: 1, Name: "Mindset Diagnostic"}}}
	questions := &stubQuestionStore{questions: []*models.Question{
		{ID: 1, ToolID: 1, QuestionText: "I see setbacks as opportunities to learn", QuestionType: "likert"},
		{ID: 2, ToolID: 1, QuestionText: "I avoid tasks I might fail at", QuestionType: "likert"},
	}}
	r := newToolRouter(tools, questions)

	req := httptest.NewRequest(http.MethodGet, "/api/tools/1/questions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Tool      *models.DiagnosticTool `json:"tool"`
			Questions []*models.Question     `json:"questions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Mindset Diagnostic", resp.Data.Tool.Name)
	require.Len(t, resp.Data.Questions, 2)
	assert.Equal(t, int64(1), resp.Data.Questions[0].ID)
}

func TestListQuestionsUnknownTool(t *testing.T) {
	r := newToolRouter(&stubToolStore{}, &stubQuestionStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/tools/9/questions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w.Body.Bytes()))
}

func TestListTools(t *testing.T) {
	r := newToolRouter(&stubToolStore{tools: []*models.DiagnosticTool{{ID: 1, Name: "Mindset Diagnostic"}}}, &stubQuestionStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []*models.DiagnosticTool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
}
