package services

import (
	"strconv"

	"fincompass/internal/models"

	"github.com/shopspring/decimal"
)

const (
	baseScore = 50

	// RunwayCapMonths is the display cap: anything above is reported as
	// the "24+" sentinel rather than a number.
	RunwayCapMonths = 24
)

type healthScoreService struct{}

// NewHealthScoreService creates a new HealthScoreServiceInterface instance
func NewHealthScoreService() HealthScoreServiceInterface {
	return &healthScoreService{}
}

// Score converts a balance and period income/expense aggregate into a 0-100
// score. Two weightings exist: models.ScoreVariantAdvisor is the default used
// by the advisor, models.ScoreVariantMetrics is the legacy metrics weighting.
// Unknown variants fall back to the advisor weighting.
func (s *healthScoreService) Score(balance, income, expense decimal.Decimal, variant models.ScoreVariant) models.HealthScore {
	savingsRate := savingsRatePercent(income, expense)
	runway := runwayMonths(balance, expense)

	var score int
	switch variant {
	case models.ScoreVariantMetrics:
		score = scoreMetricsVariant(savingsRate, runway)
	default:
		score = scoreAdvisorVariant(savingsRate, runway)
	}

	return models.HealthScore{
		Score:              score,
		Status:             StatusForScore(score),
		SavingsRate:        savingsRate,
		DisplaySavingsRate: max(savingsRate, 0),
		MonthlyBurn:        expense,
		RunwayMonths:       runway,
		RunwayLabel:        runwayLabel(runway),
	}
}

// scoreAdvisorVariant is the authoritative weighting.
func scoreAdvisorVariant(savingsRate, runway float64) int {
	score := baseScore

	switch {
	case savingsRate > 20:
		score += 25
	case savingsRate > 10:
		score += 15
	case savingsRate > 0:
		score += 5
	default:
		score -= 20
	}

	switch {
	case runway > 6:
		score += 25
	case runway > 3:
		score += 15
	case runway < 1:
		score -= 15
	}

	return clampScore(score)
}

// scoreMetricsVariant is the legacy weighting kept for backward-compatible
// output.
func scoreMetricsVariant(savingsRate, runway float64) int {
	score := baseScore

	switch {
	case savingsRate > 20:
		score += 20
	case savingsRate > 0:
		score += 10
	default:
		score -= 10
	}

	switch {
	case runway > 6:
		score += 30
	case runway > 3:
		score += 15
	case runway < 1:
		score -= 20
	}

	return clampScore(score)
}

// StatusForScore maps a score to its qualitative band.
func StatusForScore(score int) string {
	switch {
	case score >= 85:
		return models.StatusExcellent
	case score >= 65:
		return models.StatusGood
	case score >= 40:
		return models.StatusWarning
	default:
		return models.StatusCritical
	}
}

// savingsRatePercent returns (income-expense)/income as a percentage, 0 when
// there is no income.
func savingsRatePercent(income, expense decimal.Decimal) float64 {
	if income.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return income.Sub(expense).Div(income).InexactFloat64() * 100
}

// runwayMonths returns how many months the balance sustains the monthly
// expense rate. The divisor is never less than 1, so zero or fractional
// expenses cannot inflate the runway.
func runwayMonths(balance, expense decimal.Decimal) float64 {
	divisor := expense
	if divisor.LessThan(decimal.NewFromInt(1)) {
		divisor = decimal.NewFromInt(1)
	}
	return balance.Div(divisor).InexactFloat64()
}

func runwayLabel(runway float64) string {
	if runway > RunwayCapMonths {
		return "24+"
	}
	return strconv.FormatFloat(runway, 'f', 1, 64)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
