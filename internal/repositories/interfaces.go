package repositories

import (
	"time"

	"fincompass/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for transaction
// repository operations. Reads are always scoped to a user.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	DeleteByUserID(userID uuid.UUID) error
}

// WalletRepositoryInterface defines the contract for wallet repository
// operations.
type WalletRepositoryInterface interface {
	Create(wallet *models.Wallet) error
	CreateBatch(wallets []models.Wallet) error
	GetByID(id uuid.UUID) (*models.Wallet, error)
	GetByUserID(userID uuid.UUID) ([]models.Wallet, error)
	GetTotalBalanceByUserID(userID uuid.UUID) (decimal.Decimal, error)
	DeleteByUserID(userID uuid.UUID) error
}
