package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	validUserID      = "8b9d6a60-3c3b-4d26-9f2d-5a4f2a1c9e01"
	validChallengeID = "0a4e1c52-77f1-43e9-a3cf-92d4a8a1b7c3"
)

func TestSubmitRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SubmitRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     SubmitRequest{UserID: validUserID, ChallengeID: validChallengeID, Notes: "planted one"},
			wantErr: false,
		},
		{
			name:    "valid without notes",
			req:     SubmitRequest{UserID: validUserID, ChallengeID: validChallengeID},
			wantErr: false,
		},
		{
			name:    "missing user id",
			req:     SubmitRequest{ChallengeID: validChallengeID},
			wantErr: true,
		},
		{
			name:    "malformed challenge id",
			req:     SubmitRequest{UserID: validUserID, ChallengeID: "banana"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRedeemRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RedeemRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     RedeemRequest{UserID: validUserID, Points: 10000},
			wantErr: false,
		},
		{
			name:    "valid with under-18 flag",
			req:     RedeemRequest{UserID: validUserID, Points: 10000, ForUnder18: true},
			wantErr: false,
		},
		{
			name:    "zero points",
			req:     RedeemRequest{UserID: validUserID, Points: 0},
			wantErr: true,
		},
		{
			name:    "negative points",
			req:     RedeemRequest{UserID: validUserID, Points: -5},
			wantErr: true,
		},
		{
			name:    "malformed user id",
			req:     RedeemRequest{UserID: "nope", Points: 10000},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
