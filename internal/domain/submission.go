package domain

import "time"

type SubmissionStatus string

const (
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionRejected SubmissionStatus = "rejected"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionApproved, SubmissionPending, SubmissionRejected:
		return true
	}
	return false
}

// Submission records a completed challenge. PointsAwarded is copied from the
// challenge at submission time and never recomputed.
type Submission struct {
	ID            SubmissionID     `json:"id"`
	UserID        UserID           `json:"user_id"`
	ChallengeID   ChallengeID      `json:"challenge_id"`
	ProofURL      string           `json:"proof_url,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	PointsAwarded int              `json:"points_awarded"`
	Status        SubmissionStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
