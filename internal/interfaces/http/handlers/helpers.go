// internal/interfaces/http/handlers/helpers.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arcadiareads/bookstore-backend/internal/domain/catalog"
	"github.com/arcadiareads/bookstore-backend/internal/domain/order"
	"github.com/arcadiareads/bookstore-backend/internal/domain/review"
)

// parseIDParam reads the :id path parameter, writing a 400 on failure
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID",
		})
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads page and limit query parameters
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

// parseListFilter reads the public catalog filters from query parameters
func parseListFilter(c *gin.Context) catalog.ListFilter {
	page, limit := parsePagination(c)

	f := catalog.ListFilter{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      page,
		Limit:     limit,
	}

	if condition := c.Query("condition"); condition != "" {
		f.Condition = catalog.Condition(condition)
	}
	if minPrice, err := strconv.ParseInt(c.Query("min_price"), 10, 64); err == nil {
		f.MinPrice = &minPrice
	}
	if maxPrice, err := strconv.ParseInt(c.Query("max_price"), 10, 64); err == nil {
		f.MaxPrice = &maxPrice
	}

	return f
}

// writeModerationError maps domain errors onto HTTP statuses
func writeModerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrForbidden) || errors.Is(err, review.ErrForbidden) || errors.Is(err, order.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	case errors.Is(err, catalog.ErrNotFound) || errors.Is(err, review.ErrNotFound) || errors.Is(err, order.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	}
}
