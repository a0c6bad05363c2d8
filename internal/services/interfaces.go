package services

import (
	"time"

	"fincompass/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ForecastServiceInterface projects future monthly cash-flow balances from
// historical averages and recurring transactions. All operations are pure:
// identical inputs and reference time produce identical output.
type ForecastServiceInterface interface {
	// Forecast returns monthsToForecast+1 points; index 0 is the current
	// month with the untouched initial balance.
	Forecast(transactions []models.Transaction, initialBalance decimal.Decimal, monthsToForecast int, now time.Time) []models.ForecastPoint

	// ApplyScenarioBands fills best/worst-case bounds on prediction points.
	ApplyScenarioBands(points []models.ForecastPoint) []models.ForecastPoint

	// ClassifyRisk grades a banded forecast as high, medium or low.
	ClassifyRisk(points []models.ForecastPoint, initialBalance decimal.Decimal) string
}

// HealthScoreServiceInterface converts period aggregates into a 0-100 score.
type HealthScoreServiceInterface interface {
	Score(balance, income, expense decimal.Decimal, variant models.ScoreVariant) models.HealthScore
}

// AdvisorServiceInterface generates the full financial diagnosis.
type AdvisorServiceInterface interface {
	Diagnose(transactions []models.Transaction, balance, income, expense decimal.Decimal) models.FinancialDiagnosis
}

// PatternServiceInterface is the month-over-month pattern analyzer. Every
// method is a stateless function of its arguments and the supplied reference
// date.
type PatternServiceInterface interface {
	AnalyzeCashFlow(transactions []models.Transaction, referenceDate time.Time) models.CashFlowAnalysis
	DetectCategoryAnomalies(transactions []models.Transaction, referenceDate time.Time) []models.CategoryAnomaly
	TopExpenses(transactions []models.Transaction, referenceDate time.Time) []models.CategoryExpense
	ProjectNextMonth(transactions []models.Transaction, referenceDate time.Time) models.NextMonthProjection
	CalculateHealthScore(transactions []models.Transaction, referenceDate time.Time) models.FinancialHealthScore
	GenerateMonthlyReport(transactions []models.Transaction, referenceDate time.Time) models.MonthlyReport
}

// SampleDataServiceInterface generates realistic demo history for local
// development and demos.
type SampleDataServiceInterface interface {
	GenerateHistory(userID uuid.UUID, months int, now time.Time) ([]models.Wallet, []models.Transaction)
}

// MetricsRecorderInterface records operational metrics for analysis calls.
type MetricsRecorderInterface interface {
	RecordAnalysis(kind, status string, duration time.Duration)
	RecordAnomalies(count int)
	RecordReportScore(score int)
}
