package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()
	validDate := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid income transaction",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypeIncome,
				Amount: decimal.NewFromFloat(5000.00),
				Date:   validDate,
			},
		},
		{
			name: "valid expense transaction",
			transaction: Transaction{
				UserID:     validUserID,
				Type:       TransactionTypeExpense,
				Amount:     decimal.NewFromFloat(150.50),
				Date:       validDate,
				CategoryID: "mercado",
			},
		},
		{
			name: "zero amount is allowed",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypeExpense,
				Amount: decimal.Zero,
				Date:   validDate,
			},
		},
		{
			name: "invalid transaction type",
			transaction: Transaction{
				UserID: validUserID,
				Type:   "transfer",
				Amount: decimal.NewFromFloat(100.00),
				Date:   validDate,
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypeExpense,
				Amount: decimal.NewFromFloat(-10.00),
				Date:   validDate,
			},
			wantErr: ErrNegativeAmount,
		},
		{
			name: "missing date",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypeExpense,
				Amount: decimal.NewFromFloat(10.00),
			},
			wantErr: ErrMissingDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Validate_MissingUserID(t *testing.T) {
	transaction := Transaction{
		Type:   TransactionTypeIncome,
		Amount: decimal.NewFromFloat(100.00),
		Date:   time.Now(),
	}

	err := transaction.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user ID is required")
}

func TestTransaction_SignedAmount(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(100)}
	expense := Transaction{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(100)}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(100)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-100)))
}

func TestTransaction_InMonth(t *testing.T) {
	transaction := Transaction{
		Date: time.Date(2026, time.September, 30, 23, 0, 0, 0, time.UTC),
	}

	assert.True(t, transaction.InMonth(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, transaction.InMonth(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)))
	// Same month of a different year does not match.
	assert.False(t, transaction.InMonth(time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)))
}

func TestMonthTotals(t *testing.T) {
	ref := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	transactions := []Transaction{
		{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(5000), Date: ref},
		{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(1200), Date: ref.AddDate(0, 0, 5)},
		{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(800), Date: ref},
		// Outside the reference month.
		{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(9999), Date: ref.AddDate(0, -1, 0)},
	}

	income, expense := MonthTotals(transactions, ref)

	assert.True(t, income.Equal(decimal.NewFromInt(5000)))
	assert.True(t, expense.Equal(decimal.NewFromInt(2000)))
}

func TestMonthTotals_Empty(t *testing.T) {
	income, expense := MonthTotals(nil, time.Now())

	assert.True(t, income.IsZero())
	assert.True(t, expense.IsZero())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))
	assert.False(t, IsValidTransactionType("transfer"))
	assert.False(t, IsValidTransactionType(""))
}
