package repository

import (
	"context"
	"fmt"

	"github.com/ecohero-plus/ecohero-api/internal/domain"
	"github.com/ecohero-plus/ecohero-api/internal/repository/dao"
)

var ErrInsufficientBalance = dao.ErrInsufficientBalance

type WalletDAO interface {
	SumRedeemedPoints(ctx context.Context, userID string) (int, error)
	InsertRedemption(ctx context.Context, transaction dao.WalletTransaction) (dao.WalletTransaction, error)
}

type SubmissionDAO interface {
	Insert(ctx context.Context, submission dao.Submission) (dao.Submission, error)
	SumApprovedPoints(ctx context.Context, userID string) (int, error)
}

// WalletRepository backs the ledger engine: earn events come from the
// submission table, spend events from the wallet transaction table.
type WalletRepository struct {
	walletDAO     WalletDAO
	submissionDAO SubmissionDAO
}

func NewWalletRepository(walletDAO WalletDAO, submissionDAO SubmissionDAO) *WalletRepository {
	return &WalletRepository{
		walletDAO:     walletDAO,
		submissionDAO: submissionDAO,
	}
}

// SumEarned totals points from the user's approved submissions.
func (r *WalletRepository) SumEarned(ctx context.Context, userID domain.UserID) (int, error) {
	earned, err := r.submissionDAO.SumApprovedPoints(ctx, userID.String())
	if err != nil {
		return 0, fmt.Errorf("r.submissionDAO.SumApprovedPoints -> %w", err)
	}

	return earned, nil
}

// SumRedeemed totals points from the user's redeem transactions.
func (r *WalletRepository) SumRedeemed(ctx context.Context, userID domain.UserID) (int, error) {
	redeemed, err := r.walletDAO.SumRedeemedPoints(ctx, userID.String())
	if err != nil {
		return 0, fmt.Errorf("r.walletDAO.SumRedeemedPoints -> %w", err)
	}

	return redeemed, nil
}

// CreateRedemption appends a redeem transaction. The balance check and the
// append run atomically at the store, serialized per user.
func (r *WalletRepository) CreateRedemption(ctx context.Context, transaction domain.WalletTransaction) (domain.WalletTransaction, error) {
	created, err := r.walletDAO.InsertRedemption(ctx, dao.WalletTransaction{
		UserID: transaction.UserID.String(),
		Type:   string(transaction.Type),
		Points: transaction.Points,
		Note:   transaction.Note,
	})
	if err != nil {
		return domain.WalletTransaction{}, fmt.Errorf("r.walletDAO.InsertRedemption -> %w", err)
	}

	return r.transactionDaoToDomain(created), nil
}

func (r *WalletRepository) CreateSubmission(ctx context.Context, submission domain.Submission) (domain.Submission, error) {
	created, err := r.submissionDAO.Insert(ctx, dao.Submission{
		UserID:        submission.UserID.String(),
		ChallengeID:   submission.ChallengeID.String(),
		ProofURL:      submission.ProofURL,
		Notes:         submission.Notes,
		PointsAwarded: submission.PointsAwarded,
		Status:        string(submission.Status),
	})
	if err != nil {
		return domain.Submission{}, fmt.Errorf("r.submissionDAO.Insert -> %w", err)
	}

	return r.submissionDaoToDomain(created), nil
}

func (r *WalletRepository) transactionDaoToDomain(t dao.WalletTransaction) domain.WalletTransaction {
	return domain.WalletTransaction{
		ID:        domain.TransactionID(t.ID),
		UserID:    domain.UserID(t.UserID),
		Type:      domain.TransactionType(t.Type),
		Points:    t.Points,
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}

func (r *WalletRepository) submissionDaoToDomain(s dao.Submission) domain.Submission {
	return domain.Submission{
		ID:            domain.SubmissionID(s.ID),
		UserID:        domain.UserID(s.UserID),
		ChallengeID:   domain.ChallengeID(s.ChallengeID),
		ProofURL:      s.ProofURL,
		Notes:         s.Notes,
		PointsAwarded: s.PointsAwarded,
		Status:        domain.SubmissionStatus(s.Status),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
