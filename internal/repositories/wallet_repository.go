package repositories

import (
	"errors"
	"fmt"

	"fincompass/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrWalletNotFound = errors.New("wallet not found")
)

// walletRepository implements WalletRepositoryInterface
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) WalletRepositoryInterface {
	return &walletRepository{
		db: db,
	}
}

// Create creates a new wallet
func (r *walletRepository) Create(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// CreateBatch creates multiple wallets
func (r *walletRepository) CreateBatch(wallets []models.Wallet) error {
	if len(wallets) == 0 {
		return nil
	}
	if err := r.db.Create(&wallets).Error; err != nil {
		return fmt.Errorf("failed to create wallets: %w", err)
	}
	return nil
}

// GetByID retrieves a wallet by ID
func (r *walletRepository) GetByID(id uuid.UUID) (*models.Wallet, error) {
	wallet := &models.Wallet{}
	if err := r.db.First(wallet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

// GetByUserID retrieves all wallets for a user
func (r *walletRepository) GetByUserID(userID uuid.UUID) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallets: %w", err)
	}
	return wallets, nil
}

// GetTotalBalanceByUserID sums the balances of a user's wallets. A user with
// no wallets has a zero total.
func (r *walletRepository) GetTotalBalanceByUserID(userID uuid.UUID) (decimal.Decimal, error) {
	wallets, err := r.GetByUserID(userID)
	if err != nil {
		return decimal.Zero, err
	}
	return models.TotalBalance(wallets), nil
}

// DeleteByUserID removes all wallets for a user
func (r *walletRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Wallet{}).Error; err != nil {
		return fmt.Errorf("failed to delete wallets: %w", err)
	}
	return nil
}
