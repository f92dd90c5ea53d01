package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrChallengeNotFound = errors.New("challenge not found")

// maxChallengeResults caps list queries, mirroring the store's find-many cap.
const maxChallengeResults = 100

type Challenge struct {
	ID string `gorm:"type:uuid;primaryKey"`

	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Audience    string `gorm:"not null"` // "kid", "adult", or "all"
	Points      int    `gorm:"not null"`
	IsActive    bool   `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Challenge) TableName() string {
	return "challenge"
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type ChallengeDAO struct {
	db *gorm.DB
}

func NewChallengeDAO(db *gorm.DB) *ChallengeDAO {
	return &ChallengeDAO{
		db: db,
	}
}

func (d *ChallengeDAO) Insert(ctx context.Context, challenge Challenge) (Challenge, error) {
	result := d.db.WithContext(ctx).Create(&challenge)
	if result.Error != nil {
		return Challenge{}, result.Error
	}

	return challenge, nil
}

func (d *ChallengeDAO) FindByID(ctx context.Context, id string) (Challenge, error) {
	var challenge Challenge

	result := d.db.WithContext(ctx).First(&challenge, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Challenge{}, ErrChallengeNotFound
		}

		return Challenge{}, result.Error
	}

	return challenge, nil
}

// FindActive returns active challenges, optionally filtered by audience.
func (d *ChallengeDAO) FindActive(ctx context.Context, audience string) ([]Challenge, error) {
	var challenges []Challenge

	query := d.db.WithContext(ctx).Where("is_active = ?", true)
	if audience != "" {
		query = query.Where("audience = ?", audience)
	}

	result := query.Limit(maxChallengeResults).Find(&challenges)
	if result.Error != nil {
		return nil, result.Error
	}

	return challenges, nil
}

func (d *ChallengeDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Challenge{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
