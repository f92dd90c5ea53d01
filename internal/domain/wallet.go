package domain

import "math"

const (
	// PointsPerDollar is the fixed conversion rate: 1000 points = $1.
	PointsPerDollar = 1000

	// MinWithdrawalDollars gates redemptions: a request below $10 worth of
	// points is rejected regardless of balance.
	MinWithdrawalDollars = 10.0
)

// Wallet is the derived view of a user's ledger. It is never stored; it is
// recomputed from the earn/spend sums on every read.
type Wallet struct {
	UserID               UserID  `json:"user_id"`
	Points               int     `json:"points"`
	Dollars              float64 `json:"dollars"`
	CanWithdraw          bool    `json:"can_withdraw"`
	MinWithdrawalDollars float64 `json:"min_withdrawal_dollars"`
}

// ComputeWallet derives the spendable balance from the total earned and total
// redeemed points. The balance clamps at zero: if redemptions in the store
// somehow exceed earnings, the result is 0, not a negative number or an error.
func ComputeWallet(userID UserID, earned, redeemed int) Wallet {
	balance := earned - redeemed
	if balance < 0 {
		balance = 0
	}

	// Dollars is rounded for display only; the withdrawal gate uses the raw
	// quotient so a balance like 9996 does not round up past the threshold.
	return Wallet{
		UserID:               userID,
		Points:               balance,
		Dollars:              PointsToDollars(balance),
		CanWithdraw:          MeetsMinWithdrawal(balance),
		MinWithdrawalDollars: MinWithdrawalDollars,
	}
}

// PointsToDollars converts points to a dollar amount rounded to 2 decimal
// places for display.
func PointsToDollars(points int) float64 {
	return math.Round(float64(points)/PointsPerDollar*100) / 100
}

// MeetsMinWithdrawal checks the minimum-withdrawal rule against the requested
// amount itself, not the remaining balance.
func MeetsMinWithdrawal(points int) bool {
	return float64(points)/PointsPerDollar >= MinWithdrawalDollars
}
