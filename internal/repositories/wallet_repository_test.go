package repositories

import (
	"testing"

	"fincompass/internal/database"
	"fincompass/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// WalletRepositorySuite defines the test suite for WalletRepository
type WalletRepositorySuite struct {
	suite.Suite
	repo   WalletRepositoryInterface
	userID uuid.UUID
}

// TestWalletRepositorySuite runs the test suite
func TestWalletRepositorySuite(t *testing.T) {
	suite.Run(t, new(WalletRepositorySuite))
}

// SetupTest runs before each test in the suite
func (s *WalletRepositorySuite) SetupTest() {
	db := database.NewTestDB(s.T())
	s.repo = NewWalletRepository(db)
	s.userID = uuid.New()
}

func (s *WalletRepositorySuite) newWallet(name string, balance int64) models.Wallet {
	return models.Wallet{
		UserID:  s.userID,
		Name:    name,
		Balance: decimal.NewFromInt(balance),
	}
}

func (s *WalletRepositorySuite) TestCreate() {
	wallet := s.newWallet("Conta Corrente", 1000)

	err := s.repo.Create(&wallet)
	s.NoError(err)
	s.NotEqual(uuid.Nil, wallet.ID)

	found, err := s.repo.GetByID(wallet.ID)
	s.NoError(err)
	s.Equal("Conta Corrente", found.Name)
	s.True(found.Balance.Equal(decimal.NewFromInt(1000)))
}

func (s *WalletRepositorySuite) TestGetByIDNotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrWalletNotFound)
}

func (s *WalletRepositorySuite) TestGetTotalBalanceSumsAllWallets() {
	// Negative balances are allowed and must reduce the total.
	s.NoError(s.repo.CreateBatch([]models.Wallet{
		s.newWallet("Conta Corrente", 1500),
		s.newWallet("Poupança", 3000),
		s.newWallet("Cartão", -500),
	}))

	total, err := s.repo.GetTotalBalanceByUserID(s.userID)
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromInt(4000)))
}

func (s *WalletRepositorySuite) TestGetTotalBalanceNoWalletsIsZero() {
	total, err := s.repo.GetTotalBalanceByUserID(s.userID)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *WalletRepositorySuite) TestGetByUserIDScopedToUser() {
	mine := s.newWallet("Conta Corrente", 100)
	s.NoError(s.repo.Create(&mine))

	other := s.newWallet("Outra Conta", 999)
	other.UserID = uuid.New()
	s.NoError(s.repo.Create(&other))

	wallets, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)
	s.Require().Len(wallets, 1)
	s.Equal(mine.ID, wallets[0].ID)
}

func (s *WalletRepositorySuite) TestDeleteByUserID() {
	s.NoError(s.repo.CreateBatch([]models.Wallet{
		s.newWallet("Conta Corrente", 100),
		s.newWallet("Poupança", 200),
	}))

	s.NoError(s.repo.DeleteByUserID(s.userID))

	wallets, err := s.repo.GetByUserID(s.userID)
	s.NoError(err)
	s.Empty(wallets)
}
