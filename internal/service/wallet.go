package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecohero-plus/ecohero-api/internal/domain"
	"github.com/ecohero-plus/ecohero-api/internal/repository"
)

var (
	ErrInvalidID           = domain.ErrInvalidID
	ErrInvalidAmount       = errors.New("points amount must be positive")
	ErrBelowMinWithdrawal  = errors.New("redemption is below the minimum withdrawal")
	ErrInsufficientBalance = repository.ErrInsufficientBalance
	ErrChallengeNotFound   = repository.ErrChallengeNotFound
)

const (
	noteWithdrawal       = "Withdrawal"
	noteParentWithdrawal = "Parent-approved withdrawal"
)

type WalletRepository interface {
	SumEarned(ctx context.Context, userID domain.UserID) (int, error)
	SumRedeemed(ctx context.Context, userID domain.UserID) (int, error)
	CreateRedemption(ctx context.Context, transaction domain.WalletTransaction) (domain.WalletTransaction, error)
	CreateSubmission(ctx context.Context, submission domain.Submission) (domain.Submission, error)
}

type WalletUserRepository interface {
	FindByID(ctx context.Context, id domain.UserID) (domain.User, error)
}

type WalletChallengeRepository interface {
	FindByID(ctx context.Context, id domain.ChallengeID) (domain.Challenge, error)
}

// WalletService is the ledger engine. Balances are derived from the
// append-only earn/spend history on every read; nothing stores a running
// total.
type WalletService struct {
	repo          WalletRepository
	userRepo      WalletUserRepository
	challengeRepo WalletChallengeRepository
}

func NewWalletService(repo WalletRepository, userRepo WalletUserRepository, challengeRepo WalletChallengeRepository) *WalletService {
	return &WalletService{
		repo:          repo,
		userRepo:      userRepo,
		challengeRepo: challengeRepo,
	}
}

// GetWallet derives the user's spendable balance. The id must be well formed
// but the user does not have to exist; an unknown id has an empty ledger.
func (s *WalletService) GetWallet(ctx context.Context, rawUserID string) (domain.Wallet, error) {
	userID, err := domain.ParseUserID(rawUserID)
	if err != nil {
		return domain.Wallet{}, err
	}

	earned, err := s.repo.SumEarned(ctx, userID)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("s.repo.SumEarned -> %w", err)
	}

	redeemed, err := s.repo.SumRedeemed(ctx, userID)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("s.repo.SumRedeemed -> %w", err)
	}

	return domain.ComputeWallet(userID, earned, redeemed), nil
}

// Redeem appends a redeem transaction once the request passes the amount and
// minimum-withdrawal checks. The balance check happens inside the store
// transaction, so a rejected redemption never writes anything.
//
// forUnder18 only changes the transaction note; it performs no verification
// of parental consent. Product has been asked whether the is_parent_approved
// flag should gate this.
func (s *WalletService) Redeem(ctx context.Context, rawUserID string, points int, forUnder18 bool) (domain.WalletTransaction, error) {
	userID, err := domain.ParseUserID(rawUserID)
	if err != nil {
		return domain.WalletTransaction{}, err
	}

	if points <= 0 {
		return domain.WalletTransaction{}, ErrInvalidAmount
	}

	// The minimum applies to the requested amount, not the remaining balance.
	if !domain.MeetsMinWithdrawal(points) {
		return domain.WalletTransaction{}, ErrBelowMinWithdrawal
	}

	note := noteWithdrawal
	if forUnder18 {
		note = noteParentWithdrawal
	}

	created, err := s.repo.CreateRedemption(ctx, domain.WalletTransaction{
		UserID: userID,
		Type:   domain.TransactionRedeem,
		Points: points,
		Note:   note,
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			return domain.WalletTransaction{}, ErrInsufficientBalance
		}

		return domain.WalletTransaction{}, fmt.Errorf("s.repo.CreateRedemption -> %w", err)
	}

	return created, nil
}

// RecordEarning creates an approved submission worth the challenge's point
// value at this moment. Both the user and the challenge must exist.
func (s *WalletService) RecordEarning(ctx context.Context, rawUserID, rawChallengeID, notes string) (domain.Submission, error) {
	userID, err := domain.ParseUserID(rawUserID)
	if err != nil {
		return domain.Submission{}, err
	}

	challengeID, err := domain.ParseChallengeID(rawChallengeID)
	if err != nil {
		return domain.Submission{}, err
	}

	if _, err = s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.Submission{}, ErrUserNotFound
		}

		return domain.Submission{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	challenge, err := s.challengeRepo.FindByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, ErrChallengeNotFound) {
			return domain.Submission{}, ErrChallengeNotFound
		}

		return domain.Submission{}, fmt.Errorf("s.challengeRepo.FindByID -> %w", err)
	}

	created, err := s.repo.CreateSubmission(ctx, domain.Submission{
		UserID:        userID,
		ChallengeID:   challengeID,
		Notes:         notes,
		PointsAwarded: challenge.Points,
		Status:        domain.SubmissionApproved,
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrChallengeNotFound) {
			return domain.Submission{}, err
		}

		return domain.Submission{}, fmt.Errorf("s.repo.CreateSubmission -> %w", err)
	}

	return created, nil
}
