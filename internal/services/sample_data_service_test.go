package services

import (
	"testing"
	"time"

	"fincompass/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SampleDataServiceTestSuite struct {
	suite.Suite
	userID uuid.UUID
	now    time.Time
}

func TestSampleDataServiceSuite(t *testing.T) {
	suite.Run(t, new(SampleDataServiceTestSuite))
}

func (s *SampleDataServiceTestSuite) SetupTest() {
	s.userID = uuid.New()
	s.now = time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
}

func (s *SampleDataServiceTestSuite) TestGenerateHistory() {
	service := NewSampleDataService(42)

	wallets, transactions := service.GenerateHistory(s.userID, 6, s.now)

	s.Require().Len(wallets, 1)
	s.Equal("Conta Corrente", wallets[0].Name)
	s.Equal(s.userID, wallets[0].UserID)
	s.True(wallets[0].Balance.IsPositive())

	// Salary, rent and 20 profile expenses per month.
	s.Len(transactions, 6*22)

	for i := range transactions {
		txn := &transactions[i]
		s.NoError(txn.Validate())
		s.Equal(s.userID, txn.UserID)
		s.Equal(wallets[0].ID, txn.WalletID)
		s.True(txn.Date.Before(s.now))
	}
}

func (s *SampleDataServiceTestSuite) TestGenerateHistoryRecurringStreams() {
	service := NewSampleDataService(42)

	_, transactions := service.GenerateHistory(s.userID, 3, s.now)

	salaries := 0
	rents := 0
	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsRecurring {
			continue
		}
		s.Equal(models.RecurrenceMonthly, txn.RecurrenceInterval)
		switch txn.CategoryID {
		case "salario":
			s.True(txn.IsIncome())
			salaries++
		case "moradia":
			s.True(txn.IsExpense())
			rents++
		}
	}

	s.Equal(3, salaries)
	s.Equal(3, rents)
}

func (s *SampleDataServiceTestSuite) TestGenerateHistoryDeterministicForSeed() {
	first, firstTxns := NewSampleDataService(7).GenerateHistory(s.userID, 2, s.now)
	second, secondTxns := NewSampleDataService(7).GenerateHistory(s.userID, 2, s.now)

	s.True(first[0].Balance.Equal(second[0].Balance))
	s.Require().Equal(len(firstTxns), len(secondTxns))
	for i := range firstTxns {
		s.True(firstTxns[i].Amount.Equal(secondTxns[i].Amount))
		s.Equal(firstTxns[i].Date, secondTxns[i].Date)
	}
}

func (s *SampleDataServiceTestSuite) TestGenerateHistoryClampsMonths() {
	_, transactions := NewSampleDataService(1).GenerateHistory(s.userID, 0, s.now)

	s.Len(transactions, 22)
}
