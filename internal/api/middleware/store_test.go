package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(configured bool) *gin.Engine {
		router := gin.New()
		router.GET("/wallet", RequireStore(configured), func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		return router
	}

	t.Run("store missing", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/wallet", nil)

		newRouter(false).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.JSONEq(t,
			`{"status_code": 503, "error": "database not configured"}`,
			recorder.Body.String(),
		)
	})

	t.Run("store configured", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/wallet", nil)

		newRouter(true).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
