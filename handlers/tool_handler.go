package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"mindset-backend/models"
	"mindset-backend/repository"

	"github.com/gin-gonic/gin"
)

// ToolStore is the repository surface the tool handler depends on
type ToolStore interface {
	GetByID(ctx context.Context, id int64) (*models.DiagnosticTool, error)
	List(ctx context.Context) ([]*models.DiagnosticTool, error)
}

// QuestionStore lists a tool's question bank
type QuestionStore interface {
	ListByToolID(ctx context.Context, toolID int64) ([]*models.Question, error)
}

// ToolHandler handles HTTP requests for diagnostic tools and their questions
type ToolHandler struct {
	toolStore     ToolStore
	questionStore QuestionStore
}

// NewToolHandler creates a new tool handler
func NewToolHandler(toolStore ToolStore, questionStore QuestionStore) *ToolHandler {
	return &ToolHandler{
		toolStore:     toolStore,
		questionStore: questionStore,
	}
}

// ListTools handles GET /api/tools
func (h *ToolHandler) ListTools(c *gin.Context) {
	tools, err := h.toolStore.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tools,
	})
}

// ListQuestions handles GET /api/tools/:id/questions
func (h *ToolHandler) ListQuestions(c *gin.Context) {
	toolID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid tool ID format",
			},
		})
		return
	}

	tool, err := h.toolStore.GetByID(c.Request.Context(), toolID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Diagnostic tool not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	questions, err := h.questionStore.ListByToolID(c.Request.Context(), toolID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"tool":      tool,
			"questions": questions,
		},
	})
}
