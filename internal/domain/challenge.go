package domain

import "time"

type Audience string

const (
	AudienceKid   Audience = "kid"
	AudienceAdult Audience = "adult"
	AudienceAll   Audience = "all"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceKid, AudienceAdult, AudienceAll:
		return true
	}
	return false
}

const (
	MinChallengePoints = 10
	MaxChallengePoints = 5000
)

// Challenge is immutable once created. There is no update endpoint, so the
// point value a submission snapshots can never drift afterwards.
type Challenge struct {
	ID          ChallengeID `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Audience    Audience    `json:"audience"`
	Points      int         `json:"points"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
