// internal/interfaces/http/handlers/review.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcadiareads/bookstore-backend/internal/domain/review"
	"github.com/arcadiareads/bookstore-backend/internal/interfaces/http/middleware"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewService *review.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *review.Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// SubmitReview handles POST /books/:id/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req review.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	req.BookID = bookID

	r, err := h.reviewService.SubmitReview(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review submitted for moderation",
		"data":    r,
	})
}

// GetBookReviews handles GET /books/:id/reviews
func (h *ReviewHandler) GetBookReviews(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	response, err := h.reviewService.ListBookReviews(c.Request.Context(), bookID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data":    response,
	})
}

// GetBookReviewSummary handles GET /books/:id/reviews/summary
func (h *ReviewHandler) GetBookReviewSummary(c *gin.Context) {
	bookID, ok := parseIDParam(c)
	if !ok {
		return
	}

	summary, err := h.reviewService.GetSummary(c.Request.Context(), bookID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to summarize reviews",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review summary retrieved successfully",
		"data":    summary,
	})
}

// AdminGetReviews handles GET /admin/reviews. Without an explicit
// status filter it serves the pending moderation queue.
func (h *ReviewHandler) AdminGetReviews(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	page, limit := parsePagination(c)

	status := review.ReviewStatusPending
	if raw := c.Query("status"); raw != "" {
		status = review.ReviewStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid review status filter",
			})
			return
		}
	}

	response, err := h.reviewService.ListForModeration(c.Request.Context(), userID, status, page, limit)
	if err != nil {
		writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data":    response,
	})
}

// AdminApproveReview handles PUT /admin/reviews/:id/approve
func (h *ReviewHandler) AdminApproveReview(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.reviewService.ApproveReview(c.Request.Context(), userID, id); err != nil {
		writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review approved successfully",
	})
}

// AdminRejectReview handles PUT /admin/reviews/:id/reject
func (h *ReviewHandler) AdminRejectReview(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.reviewService.RejectReview(c.Request.Context(), userID, id); err != nil {
		writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review rejected successfully",
	})
}
