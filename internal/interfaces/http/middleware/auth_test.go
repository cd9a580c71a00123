package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/arcadiareads/bookstore-backend/internal/interfaces/http/middleware"
)

func performAdminRequest(seed func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		seed(c)
		c.Next()
	})
	r.Use(middleware.AdminMiddleware())
	r.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	return w
}

func TestAdminMiddleware_Unauthenticated(t *testing.T) {
	w := performAdminRequest(func(c *gin.Context) {})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddleware_NonAdmin(t *testing.T) {
	w := performAdminRequest(func(c *gin.Context) {
		c.Set("user_id", uint(2))
		c.Set("is_admin", false)
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddleware_Admin(t *testing.T) {
	w := performAdminRequest(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("is_admin", true)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
