package domain

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("invalid id")

// Entity ids are opaque UUID strings at the API boundary. Each entity kind
// gets its own type so a ChallengeID cannot be passed where a UserID is
// expected.
type (
	UserID        string
	ChallengeID   string
	SubmissionID  string
	TransactionID string
)

func ParseUserID(s string) (UserID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", ErrInvalidID
	}
	return UserID(s), nil
}

func ParseChallengeID(s string) (ChallengeID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", ErrInvalidID
	}
	return ChallengeID(s), nil
}

func (id UserID) String() string        { return string(id) }
func (id ChallengeID) String() string   { return string(id) }
func (id SubmissionID) String() string  { return string(id) }
func (id TransactionID) String() string { return string(id) }
