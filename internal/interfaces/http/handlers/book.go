// internal/interfaces/http/handlers/book.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcadiareads/bookstore-backend/internal/domain/catalog"
	"github.com/arcadiareads/bookstore-backend/internal/interfaces/http/middleware"
)

// BookHandler handles catalog endpoints
type BookHandler struct {
	catalogService *catalog.Service
}

// NewBookHandler creates a new book handler
func NewBookHandler(catalogService *catalog.Service) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
	}
}

// GetBooks handles GET /books
func (h *BookHandler) GetBooks(c *gin.Context) {
	filter := parseListFilter(c)

	response, err := h.catalogService.ListBooks(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve books",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Books retrieved successfully",
		"data":    response,
	})
}

// GetBook handles GET /books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	book, err := h.catalogService.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Book not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve book",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Book retrieved successfully",
		"data":    book,
	})
}

// GetCategories handles GET /books/categories
func (h *BookHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// SubmitBook handles POST /books/sell
func (h *BookHandler) SubmitBook(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req catalog.SubmitBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	book, err := h.catalogService.SubmitBook(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Book submitted for review",
		"data":    book,
	})
}

// AdminGetBooks handles GET /admin/books
func (h *BookHandler) AdminGetBooks(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	filter := parseListFilter(c)
	if statusParam := c.Query("status"); statusParam != "" {
		status := catalog.BookStatus(statusParam)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown book status",
			})
			return
		}
		filter.Status = &status
	}

	response, err := h.catalogService.AdminListBooks(c.Request.Context(), userID, filter)
	if err != nil {
		writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Books retrieved successfully",
		"data":    response,
	})
}

// AdminApproveBook handles PUT /admin/books/:id/approve
func (h *BookHandler) AdminApproveBook(c *gin.Context) {
	h.moderate(c, h.catalogService.ApproveBook, "Book approved successfully")
}

// AdminRejectBook handles PUT /admin/books/:id/reject
func (h *BookHandler) AdminRejectBook(c *gin.Context) {
	h.moderate(c, h.catalogService.RejectBook, "Book rejected successfully")
}

// AdminUpdateStock handles PUT /admin/books/:id/inventory
func (h *BookHandler) AdminUpdateStock(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Stock int `json:"stock" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.catalogService.UpdateStock(c.Request.Context(), userID, id, req.Stock); err != nil {
		writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock updated successfully",
	})
}

// AdminUpdatePrice handles PUT /admin/books/:id/price
func (h *BookHandler) AdminUpdatePrice(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Price int64 `json:"price" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.catalogService.UpdatePrice(c.Request.Context(), userID, id, req.Price); err != nil {
		writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price updated successfully",
	})
}

func (h *BookHandler) moderate(c *gin.Context, fn func(ctx context.Context, actorID, id uint) error, msg string) {
	userID, _ := middleware.GetUserIDFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), userID, id); err != nil {
		writeModerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": msg,
	})
}
