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

type WalletService interface {
	GetWallet(ctx context.Context, rawUserID string) (domain.Wallet, error)
	Redeem(ctx context.Context, rawUserID string, points int, forUnder18 bool) (domain.WalletTransaction, error)
	RecordEarning(ctx context.Context, rawUserID, rawChallengeID, notes string) (domain.Submission, error)
}

type WalletHandler struct {
	svc WalletService
}

func NewWalletHandler(svc WalletService) *WalletHandler {
	return &WalletHandler{
		svc: svc,
	}
}

// HandleGetWallet godoc
// @Summary      Get a user's derived point balance
// @Tags         wallet
// @Produce      json
// @Param        userID    path      string true "user id"
// @Success      200      {object}   domain.Wallet
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /wallet/{userID} [get]
func (h *WalletHandler) HandleGetWallet(ctx *gin.Context) {
	wallet, err := h.svc.GetWallet(ctx.Request.Context(), ctx.Param("userID"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleGetWallet -> h.svc.GetWallet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, wallet)
}

// HandleSubmit godoc
// @Summary      Record a challenge completion and award its points
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request   body      request.SubmitRequest true "request body"
// @Success      201      {object}   response.SubmitResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /submit [post]
func (h *WalletHandler) HandleSubmit(ctx *gin.Context) {
	var req request.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	submission, err := h.svc.RecordEarning(ctx.Request.Context(), req.UserID, req.ChallengeID, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrChallengeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleSubmit -> h.svc.RecordEarning -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.SubmitResponse{
		ID:            submission.ID.String(),
		PointsAwarded: submission.PointsAwarded,
	})
}

// HandleRedeem godoc
// @Summary      Redeem points for a cash payout
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request   body      request.RedeemRequest true "request body"
// @Success      201      {object}   response.RedeemResponse
// @Failure      400      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /redeem [post]
func (h *WalletHandler) HandleRedeem(ctx *gin.Context) {
	var req request.RedeemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	transaction, err := h.svc.Redeem(ctx.Request.Context(), req.UserID, req.Points, req.ForUnder18)
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) || errors.Is(err, service.ErrInvalidAmount) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}
		if errors.Is(err, service.ErrBelowMinWithdrawal) || errors.Is(err, service.ErrInsufficientBalance) {
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))

			return
		}

		err = fmt.Errorf("v1.HandleRedeem -> h.svc.Redeem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.RedeemResponse{
		ID:     transaction.ID.String(),
		Status: domain.RedemptionPendingPayout,
	})
}
