package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ecohero-plus/ecohero-api/internal/api/handler/v1/response"
)

// RequireStore rejects data routes when the backing store was never
// configured. Startup without a store succeeds; only the routes that need it
// report unavailable.
func RequireStore(configured bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !configured {
			response.RenderErr(ctx, response.ErrServiceUnavailable("database not configured"))

			return
		}

		ctx.Next()
	}
}
