package services

import (
	"testing"
	"time"

	"fincompass/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	service ForecastServiceInterface
	now     time.Time
}

func TestForecastServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.service = NewForecastService()
	s.now = time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)
}

func (s *ForecastServiceTestSuite) newTransaction(txnType string, amount float64, date time.Time, recurring bool) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Type:        txnType,
		Amount:      decimal.NewFromFloat(amount),
		Date:        date,
		IsRecurring: recurring,
	}
}

func (s *ForecastServiceTestSuite) TestForecast_EmptyHistory() {
	points := s.service.Forecast(nil, decimal.NewFromInt(1000), 3, s.now)

	s.Len(points, 4)
	s.False(points[0].IsPrediction)
	s.True(points[0].Balance.Equal(decimal.NewFromInt(1000)), "first point carries the untouched initial balance")

	for i, point := range points {
		s.True(point.Income.IsZero(), "point %d income", i)
		s.True(point.Expense.IsZero(), "point %d expense", i)
		s.True(point.Balance.Equal(decimal.NewFromInt(1000)), "point %d balance", i)
		if i > 0 {
			s.True(point.IsPrediction, "point %d should be a prediction", i)
		}
	}
}

func (s *ForecastServiceTestSuite) TestForecast_RecurringStreams() {
	transactions := []models.Transaction{
		s.newTransaction(models.TransactionTypeIncome, 5000, s.now.AddDate(0, -1, 0), true),
		s.newTransaction(models.TransactionTypeExpense, 3000, s.now.AddDate(0, -1, 0), true),
	}

	points := s.service.Forecast(transactions, decimal.Zero, 1, s.now)

	s.Len(points, 2)
	s.True(points[1].Income.Equal(decimal.NewFromInt(5000)))
	s.True(points[1].Expense.Equal(decimal.NewFromInt(3000)))
	s.True(points[1].Balance.Equal(decimal.NewFromInt(2000)), "0 + (5000 - 3000)")
}

func (s *ForecastServiceTestSuite) TestForecast_HistoricalAveragesDivideByThree() {
	// 900 of non-recurring expense inside the window always divides by 3,
	// regardless of how many months actually had activity.
	transactions := []models.Transaction{
		s.newTransaction(models.TransactionTypeExpense, 300, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), false),
		s.newTransaction(models.TransactionTypeExpense, 600, time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), false),
	}

	points := s.service.Forecast(transactions, decimal.NewFromInt(3000), 2, s.now)

	s.True(points[1].Expense.Equal(decimal.NewFromInt(300)))
	s.True(points[1].Balance.Equal(decimal.NewFromInt(2700)))
	s.True(points[2].Balance.Equal(decimal.NewFromInt(2400)))
}

func (s *ForecastServiceTestSuite) TestForecast_WindowExcludesRecurringAndFuture() {
	transactions := []models.Transaction{
		// Recurring inside the window: excluded from averages, counted flat.
		s.newTransaction(models.TransactionTypeExpense, 900, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), true),
		// Dated exactly at the reference instant: outside the window.
		s.newTransaction(models.TransactionTypeExpense, 600, s.now, false),
		// Older than three months: outside the window.
		s.newTransaction(models.TransactionTypeExpense, 300, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), false),
	}

	points := s.service.Forecast(transactions, decimal.NewFromInt(5000), 1, s.now)

	s.True(points[1].Expense.Equal(decimal.NewFromInt(900)), "only the recurring stream projects forward")
	s.True(points[1].Balance.Equal(decimal.NewFromInt(4100)))
}

func (s *ForecastServiceTestSuite) TestForecast_Deterministic() {
	transactions := []models.Transaction{
		s.newTransaction(models.TransactionTypeIncome, 4321.57, time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC), false),
		s.newTransaction(models.TransactionTypeExpense, 1234.99, time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC), false),
		s.newTransaction(models.TransactionTypeExpense, 800, time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC), true),
	}

	first := s.service.Forecast(transactions, decimal.NewFromFloat(2500.50), 6, s.now)
	second := s.service.Forecast(transactions, decimal.NewFromFloat(2500.50), 6, s.now)

	s.Equal(first, second)
}

func (s *ForecastServiceTestSuite) TestForecast_NegativeHorizonClampedToZero() {
	points := s.service.Forecast(nil, decimal.NewFromInt(100), -2, s.now)

	s.Len(points, 1)
	s.False(points[0].IsPrediction)
}

func (s *ForecastServiceTestSuite) TestForecast_MonthLabels() {
	points := s.service.Forecast(nil, decimal.Zero, 4, s.now)

	s.Equal("set/26", points[0].Month)
	s.Equal("Setembro 2026", points[0].MonthName)
	s.Equal("out/26", points[1].Month)
	s.Equal("jan/27", points[4].Month)
	s.Equal("Janeiro 2027", points[4].MonthName)
}

func (s *ForecastServiceTestSuite) TestApplyScenarioBands() {
	points := s.service.Forecast(nil, decimal.NewFromInt(1000), 2, s.now)
	banded := s.service.ApplyScenarioBands(points)

	s.True(banded[0].BestCase.Equal(decimal.NewFromInt(1000)), "non-prediction carries balance on both bounds")
	s.True(banded[0].WorstCase.Equal(decimal.NewFromInt(1000)))

	s.True(banded[1].BestCase.Equal(decimal.NewFromInt(1050)))
	s.True(banded[1].WorstCase.Equal(decimal.NewFromInt(950)))

	s.True(banded[2].BestCase.Equal(decimal.NewFromInt(1100)))
	s.True(banded[2].WorstCase.Equal(decimal.NewFromInt(900)))
}

func (s *ForecastServiceTestSuite) TestClassifyRisk() {
	initial := decimal.NewFromInt(1000)

	flat := s.service.ApplyScenarioBands(s.service.Forecast(nil, initial, 6, s.now))
	s.Equal(models.ForecastRiskLow, s.service.ClassifyRisk(flat, initial))

	declining := []models.Transaction{
		s.newTransaction(models.TransactionTypeExpense, 100, s.now.AddDate(0, -1, 0), true),
	}
	medium := s.service.ApplyScenarioBands(s.service.Forecast(declining, initial, 6, s.now))
	s.Equal(models.ForecastRiskMedium, s.service.ClassifyRisk(medium, initial))

	crashing := []models.Transaction{
		s.newTransaction(models.TransactionTypeExpense, 500, s.now.AddDate(0, -1, 0), true),
	}
	high := s.service.ApplyScenarioBands(s.service.Forecast(crashing, initial, 6, s.now))
	s.Equal(models.ForecastRiskHigh, s.service.ClassifyRisk(high, initial))

	s.Equal(models.ForecastRiskLow, s.service.ClassifyRisk(nil, initial))
}
