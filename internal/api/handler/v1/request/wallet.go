package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type SubmitRequest struct {
	UserID      string `json:"user_id"`
	ChallengeID string `json:"challenge_id"`
	Notes       string `json:"notes,omitempty"`
}

func (req *SubmitRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required, is.UUID),
		validation.Field(&req.ChallengeID, validation.Required, is.UUID),
		validation.Field(&req.Notes, validation.Length(0, 500)),
	)
}

type RedeemRequest struct {
	UserID     string `json:"user_id"`
	Points     int    `json:"points"`
	ForUnder18 bool   `json:"for_under18"`
}

func (req *RedeemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required, is.UUID),
		validation.Field(&req.Points, validation.Required, validation.Min(1)),
	)
}
