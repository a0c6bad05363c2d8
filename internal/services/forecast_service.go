package services

import (
	"log/slog"
	"time"

	"fincompass/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// DefaultForecastMonths is the number of future months projected when
	// the caller does not ask for a specific horizon.
	DefaultForecastMonths = 6

	// historicalWindowMonths is the look-back window for monthly averages.
	// The divisor is always this constant, even when some months in the
	// window had no transactions: a sparse history dilutes the average
	// toward zero on purpose, as a conservative policy. Consumers depend
	// on this exact behavior.
	historicalWindowMonths = 3

	// scenarioBandStep widens the best/worst-case band by 5% per projected
	// month.
	scenarioBandStep = 0.05
)

var bandStepDecimal = decimal.NewFromFloat(scenarioBandStep)

type forecastService struct{}

// NewForecastService creates a new ForecastServiceInterface instance
func NewForecastService() ForecastServiceInterface {
	return &forecastService{}
}

// Forecast projects monthly cash-flow balances. It returns monthsToForecast+1
// points: index 0 is the current month with the real initial balance and
// IsPrediction=false; indices 1..N are predictions.
func (s *forecastService) Forecast(transactions []models.Transaction, initialBalance decimal.Decimal, monthsToForecast int, now time.Time) []models.ForecastPoint {
	if monthsToForecast < 0 {
		monthsToForecast = 0
	}

	avgIncome, avgExpense := s.historicalAverages(transactions, now)
	recurringIncome, recurringExpense := s.recurringTotals(transactions)

	projectedIncome := recurringIncome.Add(avgIncome)
	projectedExpense := recurringExpense.Add(avgExpense)
	netChange := projectedIncome.Sub(projectedExpense)

	points := make([]models.ForecastPoint, 0, monthsToForecast+1)
	start := monthStart(now)
	balance := initialBalance

	for i := 0; i <= monthsToForecast; i++ {
		month := start.AddDate(0, i, 0)

		if i > 0 {
			// Cumulative rounding at each step is expected and not
			// corrected.
			balance = balance.Add(netChange).Round(0)
		}

		points = append(points, models.ForecastPoint{
			Month:        shortMonthLabel(month),
			MonthName:    fullMonthLabel(month),
			Income:       projectedIncome,
			Expense:      projectedExpense,
			Balance:      balance,
			IsPrediction: i > 0,
		})
	}

	slog.Debug("forecast computed",
		"months", monthsToForecast,
		"projected_income", projectedIncome,
		"projected_expense", projectedExpense)

	return points
}

// ApplyScenarioBands fills BestCase/WorstCase on a forecast series. The band
// widens by 5% per point index; non-prediction points carry the balance on
// both bounds.
func (s *forecastService) ApplyScenarioBands(points []models.ForecastPoint) []models.ForecastPoint {
	banded := make([]models.ForecastPoint, len(points))

	for i, p := range points {
		if !p.IsPrediction {
			p.BestCase = p.Balance
			p.WorstCase = p.Balance
			banded[i] = p
			continue
		}

		spread := bandStepDecimal.Mul(decimal.NewFromInt(int64(i)))
		p.BestCase = p.Balance.Mul(decimal.NewFromInt(1).Add(spread)).Round(0)
		p.WorstCase = p.Balance.Mul(decimal.NewFromInt(1).Sub(spread)).Round(0)
		banded[i] = p
	}

	return banded
}

// ClassifyRisk grades a banded forecast: high when the worst case of the last
// point goes negative, medium when the projected balance drops below half the
// initial balance, low otherwise.
func (s *forecastService) ClassifyRisk(points []models.ForecastPoint, initialBalance decimal.Decimal) string {
	if len(points) == 0 {
		return models.ForecastRiskLow
	}

	last := points[len(points)-1]
	if last.WorstCase.IsNegative() {
		return models.ForecastRiskHigh
	}

	half := initialBalance.Div(decimal.NewFromInt(2))
	if last.Balance.LessThan(half) {
		return models.ForecastRiskMedium
	}

	return models.ForecastRiskLow
}

// historicalAverages averages monthly income and expense over the three
// months preceding now, excluding recurring transactions and anything dated
// now or later.
func (s *forecastService) historicalAverages(transactions []models.Transaction, now time.Time) (avgIncome, avgExpense decimal.Decimal) {
	windowStart := now.AddDate(0, -historicalWindowMonths, 0)

	incomeSum := decimal.Zero
	expenseSum := decimal.Zero

	for i := range transactions {
		txn := &transactions[i]
		if txn.IsRecurring {
			continue
		}
		if txn.Date.Before(windowStart) || !txn.Date.Before(now) {
			continue
		}

		if txn.IsIncome() {
			incomeSum = incomeSum.Add(txn.Amount)
		} else if txn.IsExpense() {
			expenseSum = expenseSum.Add(txn.Amount)
		}
	}

	divisor := decimal.NewFromInt(historicalWindowMonths)
	return incomeSum.Div(divisor), expenseSum.Div(divisor)
}

// recurringTotals sums recurring transactions per type over the whole
// supplied history. Each flagged transaction contributes its full amount as a
// flat monthly stream; it is never averaged.
func (s *forecastService) recurringTotals(transactions []models.Transaction) (income, expense decimal.Decimal) {
	income = decimal.Zero
	expense = decimal.Zero

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsRecurring {
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
