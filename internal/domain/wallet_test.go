package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWallet(t *testing.T) {
	userID := UserID("8b9d6a60-3c3b-4d26-9f2d-5a4f2a1c9e01")

	tests := []struct {
		name            string
		earned          int
		redeemed        int
		wantPoints      int
		wantDollars     float64
		wantCanWithdraw bool
	}{
		{
			name:            "empty ledger",
			earned:          0,
			redeemed:        0,
			wantPoints:      0,
			wantDollars:     0,
			wantCanWithdraw: false,
		},
		{
			name:            "earnings only",
			earned:          100 + 1000,
			redeemed:        0,
			wantPoints:      1100,
			wantDollars:     1.10,
			wantCanWithdraw: false,
		},
		{
			name:            "earnings at the withdrawal threshold",
			earned:          12000,
			redeemed:        0,
			wantPoints:      12000,
			wantDollars:     12.00,
			wantCanWithdraw: true,
		},
		{
			name:            "after a redemption",
			earned:          12000,
			redeemed:        10000,
			wantPoints:      2000,
			wantDollars:     2.00,
			wantCanWithdraw: false,
		},
		{
			name:            "over-redeemed ledger clamps to zero",
			earned:          500,
			redeemed:        900,
			wantPoints:      0,
			wantDollars:     0,
			wantCanWithdraw: false,
		},
		{
			// 9996-9999 round up to $10.00 for display but stay below the
			// withdrawal threshold.
			name:            "just below threshold with rounded-up dollars",
			earned:          9996,
			redeemed:        0,
			wantPoints:      9996,
			wantDollars:     10.00,
			wantCanWithdraw: false,
		},
		{
			name:            "top of the round-up band",
			earned:          9999,
			redeemed:        0,
			wantPoints:      9999,
			wantDollars:     10.00,
			wantCanWithdraw: false,
		},
		{
			name:            "below the round-up band",
			earned:          9995,
			redeemed:        0,
			wantPoints:      9995,
			wantDollars:     9.99,
			wantCanWithdraw: false,
		},
		{
			name:            "rounding to two decimal places",
			earned:          1234,
			redeemed:        0,
			wantPoints:      1234,
			wantDollars:     1.23,
			wantCanWithdraw: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := ComputeWallet(userID, tt.earned, tt.redeemed)

			assert.Equal(t, userID, wallet.UserID)
			assert.Equal(t, tt.wantPoints, wallet.Points)
			assert.InDelta(t, tt.wantDollars, wallet.Dollars, 0.0001)
			assert.Equal(t, tt.wantCanWithdraw, wallet.CanWithdraw)
			assert.InDelta(t, MinWithdrawalDollars, wallet.MinWithdrawalDollars, 0.0001)
			assert.GreaterOrEqual(t, wallet.Points, 0)

			// A wallet that advertises can_withdraw must allow redeeming its
			// full balance.
			assert.Equal(t, MeetsMinWithdrawal(wallet.Points), wallet.CanWithdraw)
		})
	}
}

func TestMeetsMinWithdrawal(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   bool
	}{
		{name: "zero", points: 0, want: false},
		{name: "below threshold", points: 5000, want: false},
		{name: "just below threshold", points: 9999, want: false},
		{name: "exactly at threshold", points: 10000, want: true},
		{name: "above threshold", points: 15000, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeetsMinWithdrawal(tt.points))
		})
	}
}

func TestPointsToDollars(t *testing.T) {
	assert.InDelta(t, 0.0, PointsToDollars(0), 0.0001)
	assert.InDelta(t, 1.10, PointsToDollars(1100), 0.0001)
	assert.InDelta(t, 5.0, PointsToDollars(5000), 0.0001)
	assert.InDelta(t, 12.0, PointsToDollars(12000), 0.0001)
	assert.InDelta(t, 0.01, PointsToDollars(5), 0.0001)
}
