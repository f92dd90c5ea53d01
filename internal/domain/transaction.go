package domain

import "time"

type TransactionType string

const (
	TransactionRedeem     TransactionType = "redeem"
	TransactionAdjustment TransactionType = "adjustment"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionRedeem, TransactionAdjustment:
		return true
	}
	return false
}

// RedemptionStatus reported to the caller. Payouts are executed outside this
// system, so a redemption never moves past pending here.
const RedemptionPendingPayout = "pending_payout"

// WalletTransaction is a ledger debit. Points is always positive; the type
// decides how the amount counts against the balance.
type WalletTransaction struct {
	ID        TransactionID   `json:"id"`
	UserID    UserID          `json:"user_id"`
	Type      TransactionType `json:"type"`
	Points    int             `json:"points"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
