package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecohero-plus/ecohero-api/internal/api/handler/v1/request"
	"github.com/ecohero-plus/ecohero-api/internal/api/handler/v1/response"
	"github.com/ecohero-plus/ecohero-api/internal/domain"
	"github.com/ecohero-plus/ecohero-api/internal/service"
)

type UserService interface {
	Register(ctx context.Context, user domain.User) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleCreateUser godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateUserRequest true "request body"
// @Success      201      {object}   response.CreateUserResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /users [post]
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), domain.User{
		Name:        req.Name,
		Age:         req.Age,
		Email:       req.Email,
		ParentEmail: req.ParentEmail,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidAge) || errors.Is(err, service.ErrParentEmailRequired) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.CreateUserResponse{
		ID: user.ID.String(),
	})
}
