package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	RecurrenceMonthly = "monthly"
	RecurrenceWeekly  = "weekly"
	RecurrenceYearly  = "yearly"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
	ErrMissingDate            = errors.New("transaction date is required")
)

// Transaction is a single income or expense record. Amounts are always
// non-negative; the type field carries the direction.
type Transaction struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	WalletID           uuid.UUID       `gorm:"type:uuid;index" json:"wallet_id"`
	Type               string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date               time.Time       `gorm:"not null;index" json:"date"`
	Description        string          `gorm:"type:text" json:"description,omitempty"`
	IsRecurring        bool            `gorm:"default:false" json:"is_recurring"`
	RecurrenceInterval string          `gorm:"type:varchar(20)" json:"recurrence_interval,omitempty"`
	CategoryID         string          `gorm:"type:varchar(100);index" json:"category_id,omitempty"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate rejects records the analytical core cannot handle. Malformed
// input fails here, at the write boundary, rather than propagating silently
// into analysis results.
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount returns the amount with income positive and expense negative
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// InMonth reports whether the transaction date falls in the same calendar
// month as ref.
func (t *Transaction) InMonth(ref time.Time) bool {
	return t.Date.Year() == ref.Year() && t.Date.Month() == ref.Month()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// MonthTotals sums income and expense for the calendar month containing ref.
func MonthTotals(transactions []Transaction, ref time.Time) (income, expense decimal.Decimal) {
	income = decimal.Zero
	expense = decimal.Zero

	for i := range transactions {
		txn := &transactions[i]
		if !txn.InMonth(ref) {
			continue
		}
		if txn.IsIncome() {
			income = income.Add(txn.Amount)
		} else if txn.IsExpense() {
			expense = expense.Add(txn.Amount)
		}
	}

	return income, expense
}
