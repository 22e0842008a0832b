package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"mindset-backend/models"
	"mindset-backend/repository"
	"mindset-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InsightService is the service surface the insight handler depends on
type InsightService interface {
	CreateInsight(ctx context.Context, req service.CreateInsightRequest) (*service.CreateInsightResult, error)
	ProcessInsight(ctx context.Context, jobID uuid.UUID) error
	GetJob(ctx context.Context, id uuid.UUID) (*models.InsightJob, error)
}

// InsightHandler handles HTTP requests for insight jobs
type InsightHandler struct {
	insightService InsightService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// CreateInsight handles POST /api/submissions/:id/insights
func (h *InsightHandler) CreateInsight(c *gin.Context) {
	userToolID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid submission ID format",
			},
		})
		return
	}

	result, err := h.insightService.CreateInsight(c.Request.Context(), service.CreateInsightRequest{
		UserToolID: userToolID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Submission not found",
				},
			})
		case errors.Is(err, service.ErrInsightsDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INSIGHTS_DISABLED",
					"message": err.Error(),
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CREATE_FAILED",
					"message": err.Error(),
				},
			})
		}
		return
	}

	// Process on a background context so a client disconnect does not
	// cancel generation; pollers read the outcome from the job row.
	go func() {
		if err := h.insightService.ProcessInsight(context.Background(), result.JobID); err != nil {
			log.Printf("Insight job %s failed: %v", result.JobID, err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"data": gin.H{
			"job_id":  result.JobID,
			"status":  "pending",
			"message": "Insight job created. Poll /api/insights/:id for updates.",
		},
	})
}

// GetInsight handles GET /api/insights/:id
func (h *InsightHandler) GetInsight(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid job ID format",
			},
		})
		return
	}

	job, err := h.insightService.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Insight job not found",
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    job,
	})
}
