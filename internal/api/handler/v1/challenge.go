package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecohero-plus/ecohero-api/internal/api/handler/v1/response"
	"github.com/ecohero-plus/ecohero-api/internal/domain"
	"github.com/ecohero-plus/ecohero-api/internal/service"
)

type ChallengeService interface {
	ListActive(ctx context.Context, audience string) ([]domain.Challenge, error)
	Seed(ctx context.Context) (service.SeedResult, error)
}

type ChallengeHandler struct {
	svc ChallengeService
}

func NewChallengeHandler(svc ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		svc: svc,
	}
}

// HandleListChallenges godoc
// @Summary      List active challenges
// @Tags         challenges
// @Produce      json
// @Param        audience  query     string false "audience filter (kid or adult)"
// @Success      200      {array}    domain.Challenge
// @Failure      500      {object}   response.Err
// @Router       /challenges [get]
func (h *ChallengeHandler) HandleListChallenges(ctx *gin.Context) {
	challenges, err := h.svc.ListActive(ctx.Request.Context(), ctx.Query("audience"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListChallenges -> h.svc.ListActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, challenges)
}

// HandleSeed godoc
// @Summary      Seed the default challenges if none exist
// @Tags         challenges
// @Produce      json
// @Success      200      {object}   response.SeedResponse
// @Failure      500      {object}   response.Err
// @Router       /seed [post]
func (h *ChallengeHandler) HandleSeed(ctx *gin.Context) {
	result, err := h.svc.Seed(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleSeed -> h.svc.Seed -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.SeedResponse{
		Status: "ok",
		Seeded: result.Seeded,
		Count:  result.Count,
	})
}
