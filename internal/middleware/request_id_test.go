package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catering_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, utils.RequestIDFrom(c.Request.Context())+"|"+c.GetString(utils.RequestIDKey))
	})

	t.Run("Propagates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(utils.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123|abc-123", rec.Body.String())
		assert.Equal(t, "abc-123", rec.Header().Get(utils.RequestIDHeader))
	})

	t.Run("Generates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(utils.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id+"|"+id, rec.Body.String())
	})

	t.Run("ReplacesOversized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(utils.RequestIDHeader, strings.Repeat("x", 500))
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Len(t, rec.Header().Get(utils.RequestIDHeader), 36)
	})
}
