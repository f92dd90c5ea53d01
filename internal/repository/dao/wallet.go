package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInsufficientBalance = errors.New("insufficient balance")

type WalletTransaction struct {
	ID string `gorm:"type:uuid;primaryKey"`

	UserID string `gorm:"type:uuid;not null;index"`
	Type   string `gorm:"not null"` // "redeem" or "adjustment"
	Points int    `gorm:"not null"`
	Note   string

	CreatedAt time.Time `gorm:"not null"`
}

func (WalletTransaction) TableName() string {
	return "wallettransaction"
}

func (t *WalletTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type WalletDAO struct {
	db *gorm.DB
}

func NewWalletDAO(db *gorm.DB) *WalletDAO {
	return &WalletDAO{
		db: db,
	}
}

// SumRedeemedPoints totals the user's redeem transactions.
func (d *WalletDAO) SumRedeemedPoints(ctx context.Context, userID string) (int, error) {
	return sumRedeemed(d.db.WithContext(ctx), userID)
}

// InsertRedemption appends a redeem transaction only if the re-derived
// balance covers it. The user row is locked FOR UPDATE for the duration, so
// two concurrent redemptions against the same user serialize instead of both
// reading the same stale balance.
func (d *WalletDAO) InsertRedemption(ctx context.Context, transaction WalletTransaction) (WalletTransaction, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user User
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "id = ?", transaction.UserID)
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		// A missing user row just means an empty ledger; the balance check
		// below rejects the redemption.

		earned, err := sumEarned(tx, transaction.UserID)
		if err != nil {
			return err
		}

		redeemed, err := sumRedeemed(tx, transaction.UserID)
		if err != nil {
			return err
		}

		balance := earned - redeemed
		if balance < 0 {
			balance = 0
		}
		if transaction.Points > balance {
			return ErrInsufficientBalance
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return WalletTransaction{}, err
	}

	return transaction, nil
}

func sumEarned(tx *gorm.DB, userID string) (int, error) {
	var earned int

	result := tx.Model(&Submission{}).
		Select("COALESCE(SUM(points_awarded), 0)").
		Where("user_id = ? AND status = ?", userID, "approved").
		Scan(&earned)
	if result.Error != nil {
		return 0, result.Error
	}

	return earned, nil
}

func sumRedeemed(tx *gorm.DB, userID string) (int, error) {
	var redeemed int

	result := tx.Model(&WalletTransaction{}).
		Select("COALESCE(SUM(points), 0)").
		Where("user_id = ? AND type = ?", userID, "redeem").
		Scan(&redeemed)
	if result.Error != nil {
		return 0, result.Error
	}

	return redeemed, nil
}
