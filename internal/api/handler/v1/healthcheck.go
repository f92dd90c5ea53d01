package v1

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ecohero-plus/ecohero-api/internal/api/handler/v1/response"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HandleHealthcheck godoc
// @Summary      Report backend and store health
// @Tags         system
// @Produce      json
// @Success      200      {object}   response.HealthResponse
// @Router       / [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	resp := response.HealthResponse{
		Message:          "EcoHero+ Backend Ready",
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envStatus("DATABASE_URL"),
		DatabaseName:     envStatus("DATABASE_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	// A missing or unreachable store degrades the report; it never fails the
	// endpoint.
	if h.db != nil {
		resp.Database = "available"

		if sqlDB, err := h.db.DB(); err == nil && sqlDB.PingContext(ctx.Request.Context()) == nil {
			resp.Database = "connected"
			resp.ConnectionStatus = "connected"

			if tables, err := h.db.Migrator().GetTables(); err == nil {
				resp.Collections = tables
			}
		}
	}

	ctx.JSON(http.StatusOK, resp)
}

func envStatus(key string) string {
	if os.Getenv(key) == "" {
		return "not set"
	}
	return "set"
}
