package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"mindset-backend/models"
	"mindset-backend/repository"
	"mindset-backend/service"

	"github.com/gin-gonic/gin"
)

// IntakeService is the service surface the intake handler depends on
type IntakeService interface {
	SubmitForm(ctx context.Context, req service.SubmitFormRequest) (*service.SubmitFormResult, error)
	GetSubmission(ctx context.Context, userToolID int64) (*models.Submission, error)
}

// IntakeHandler handles HTTP requests for form submissions
type IntakeHandler struct {
	intakeService IntakeService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(intakeService IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// SubmitFormRequest represents the request body for a form submission. The
// step fields are pointers so an absent array is rejected while an explicit
// empty array is accepted.
type SubmitFormRequest struct {
	FullName           string `json:"fullName" binding:"required"`
	TelephoneNumber    string `json:"telephoneNumber" binding:"required"`
	EmailAddress       string `json:"emailAddress" binding:"required,email"`
	ProfessionalStatus string `json:"professionalStatus" binding:"required"`
	Industry           string `json:"industry" binding:"required"`
	Organisation       string `json:"organisation" binding:"required"`
	JobLevel           string `json:"jobLevel" binding:"required"`
	Department         string `json:"department" binding:"required"`
	Location           string `json:"location" binding:"required"`
	Step2Data          *[]int `json:"step2Data" binding:"required"`
	Step3Data          *[]int `json:"step3Data" binding:"required"`
	Step4Data          *[]int `json:"step4Data" binding:"required"`
	Step5Data          *[]int `json:"step5Data" binding:"required"`
	Step6Data          *[]int `json:"step6Data" binding:"required"`
	Step7Data          *[]int `json:"step7Data" binding:"required"`
	Step8Data          *[]int `json:"step8Data" binding:"required"`
}

// SubmitForm handles POST /submit-form/
func (h *IntakeHandler) SubmitForm(c *gin.Context) {
	var req SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	serviceReq := service.SubmitFormRequest{
		FullName:           req.FullName,
		TelephoneNumber:    req.TelephoneNumber,
		EmailAddress:       req.EmailAddress,
		ProfessionalStatus: req.ProfessionalStatus,
		Industry:           req.Industry,
		Organisation:       req.Organisation,
		JobLevel:           req.JobLevel,
		Department:         req.Department,
		Location:           req.Location,
		Steps: [service.StepCount][]int{
			*req.Step2Data,
			*req.Step3Data,
			*req.Step4Data,
			*req.Step5Data,
			*req.Step6Data,
			*req.Step7Data,
			*req.Step8Data,
		},
	}

	_, err := h.intakeService.SubmitForm(c.Request.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFullName):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_FULL_NAME",
					"message": err.Error(),
				},
			})
		case errors.Is(err, repository.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMAIL_TAKEN",
					"message": "A submission with this email address already exists",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SUBMIT_FAILED",
					"message": err.Error(),
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Form submitted successfully",
	})
}

// GetSubmission handles GET /api/submissions/:id
func (h *IntakeHandler) GetSubmission(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
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

	sub, err := h.intakeService.GetSubmission(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Submission not found",
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
		"data":    sub,
	})
}
