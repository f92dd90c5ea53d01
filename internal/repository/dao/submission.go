package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Submission struct {
	ID string `gorm:"type:uuid;primaryKey"`

	UserID      string `gorm:"type:uuid;not null;index"`
	ChallengeID string `gorm:"type:uuid;not null;index"`

	ProofURL      string
	Notes         string
	PointsAwarded int    `gorm:"not null"`
	Status        string `gorm:"not null"` // "approved", "pending", or "rejected"

	User      User      `gorm:"foreignKey:UserID"`
	Challenge Challenge `gorm:"foreignKey:ChallengeID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Submission) TableName() string {
	return "submission"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type SubmissionDAO struct {
	db *gorm.DB
}

func NewSubmissionDAO(db *gorm.DB) *SubmissionDAO {
	return &SubmissionDAO{
		db: db,
	}
}

func (d *SubmissionDAO) Insert(ctx context.Context, submission Submission) (Submission, error) {
	result := d.db.WithContext(ctx).Omit(clause.Associations).Create(&submission)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			// The service checks both records up front; this catches the race
			// where one disappears between the check and the insert.
			if strings.Contains(pgErr.ConstraintName, "challenge") {
				return Submission{}, ErrChallengeNotFound
			}

			return Submission{}, ErrUserNotFound
		}

		return Submission{}, result.Error
	}

	return submission, nil
}

// SumApprovedPoints totals points_awarded over the user's approved
// submissions. Summing in the store avoids the find-many result cap.
func (d *SubmissionDAO) SumApprovedPoints(ctx context.Context, userID string) (int, error) {
	return sumEarned(d.db.WithContext(ctx), userID)
}
