package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mindset-backend/models"
	"mindset-backend/repository"

	"github.com/gin-gonic/gin"
)

// PaymentStore is the repository surface the payment handler depends on
type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByUserID(ctx context.Context, userID int64) ([]*models.Payment, error)
}

// UserStore looks up users for existence checks
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// PaymentHandler handles HTTP requests for payments
type PaymentHandler struct {
	paymentStore PaymentStore
	userStore    UserStore
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentStore PaymentStore, userStore UserStore) *PaymentHandler {
	return &PaymentHandler{
		paymentStore: paymentStore,
		userStore:    userStore,
	}
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	UserID        int64   `json:"user_id" binding:"required"`
	PaymentDate   string  `json:"payment_date" binding:"required"` // YYYY-MM-DD
	PaymentAmount float64 `json:"payment_amount" binding:"required,gt=0"`
	PaymentStatus string  `json:"payment_status" binding:"required"`
}

// CreatePayment handles POST /api/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
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

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_PAYMENT_DATE",
				"message": "payment_date must be formatted as YYYY-MM-DD",
			},
		})
		return
	}

	if _, err := h.userStore.GetByID(c.Request.Context(), req.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "USER_NOT_FOUND",
					"message": "User not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	payment := &models.Payment{
		UserID:        req.UserID,
		PaymentDate:   paymentDate,
		PaymentAmount: req.PaymentAmount,
		PaymentStatus: models.PaymentStatus(req.PaymentStatus),
	}

	if err := h.paymentStore.Create(c.Request.Context(), payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    payment,
	})
}

// ListPayments handles GET /api/users/:id/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid user ID format",
			},
		})
		return
	}

	if _, err := h.userStore.GetByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "USER_NOT_FOUND",
					"message": "User not found",
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

	payments, err := h.paymentStore.ListByUserID(c.Request.Context(), userID)
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
		"data":    payments,
	})
}
