package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet holds a signed balance. The sum of a user's wallet balances is the
// baseline for forecasting and runway computation.
type Wallet struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Wallet
func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	now := time.Now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	if w.UpdatedAt.IsZero() {
		w.UpdatedAt = now
	}

	return w.Validate()
}

// Validate validates the wallet fields
func (w *Wallet) Validate() error {
	if w.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if w.Name == "" {
		return errors.New("wallet name is required")
	}
	return nil
}

// TableName returns the table name for Wallet
func (w *Wallet) TableName() string {
	return "wallets"
}

// TotalBalance sums the balances of all wallets.
func TotalBalance(wallets []Wallet) decimal.Decimal {
	total := decimal.Zero
	for i := range wallets {
		total = total.Add(wallets[i].Balance)
	}
	return total
}
