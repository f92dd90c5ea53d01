package domain

import "time"

type User struct {
	ID               UserID    `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Email            string    `json:"email,omitempty"`
	ParentEmail      string    `json:"parent_email,omitempty"`
	IsParentApproved bool      `json:"is_parent_approved"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsMinor reports whether the account requires a parent/guardian email on file.
func (u User) IsMinor() bool {
	return u.Age < 18
}
