package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fincompass/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// anomalyThreshold flags a category when current spend exceeds 125% of
	// its historical average.
	anomalyThreshold = 1.25

	// anomalyLookbackMonths is the number of full calendar months behind
	// the reference month used as the anomaly baseline. Unlike the
	// forecast averages, the baseline divisor is the count of distinct
	// active months (minimum 1), not a fixed 3. The two behaviors are
	// deliberately distinct; unifying them would change observable output.
	anomalyLookbackMonths = 3

	topExpensesLimit = 5

	confidenceHigh = 85
	confidenceLow  = 60

	bigSwingPercent = 30
)

var (
	anomalyThresholdDec = decimal.NewFromFloat(anomalyThreshold)

	classRecommendations = map[string][]string{
		models.ClassDiamond: {
			"Mantenha o padrão atual de poupança",
			"Considere diversificar seus investimentos",
		},
		models.ClassGold: {
			"Aumente sua taxa de poupança em direção aos 30%",
			"Monitore as categorias com gastos crescentes",
		},
		models.ClassSilver: {
			"Revise assinaturas e gastos recorrentes",
			"Estabeleça um teto mensal por categoria",
		},
		models.ClassBronze: {
			"Corte gastos não essenciais imediatamente",
			"Construa uma reserva mínima de emergência",
		},
	}
)

type patternService struct{}

// NewPatternService creates a new PatternServiceInterface instance
func NewPatternService() PatternServiceInterface {
	return &patternService{}
}

// AnalyzeCashFlow sums income and expense for the reference month and the
// month before it and derives the month-over-month growth.
func (s *patternService) AnalyzeCashFlow(transactions []models.Transaction, referenceDate time.Time) models.CashFlowAnalysis {
	// Offsets start from the first of the month so a reference date on the
	// 29th-31st cannot normalize into the wrong month.
	previousMonth := monthStart(referenceDate).AddDate(0, -1, 0)

	currentIncome, currentExpense := models.MonthTotals(transactions, referenceDate)
	previousIncome, previousExpense := models.MonthTotals(transactions, previousMonth)

	currentBalance := currentIncome.Sub(currentExpense)
	previousBalance := previousIncome.Sub(previousExpense)
	difference := currentBalance.Sub(previousBalance)

	growth := 0.0
	if !previousBalance.IsZero() {
		growth = difference.Div(previousBalance.Abs()).InexactFloat64() * 100
	}

	return models.CashFlowAnalysis{
		CurrentIncome:   currentIncome,
		CurrentExpense:  currentExpense,
		CurrentBalance:  currentBalance,
		PreviousIncome:  previousIncome,
		PreviousExpense: previousExpense,
		PreviousBalance: previousBalance,
		Difference:      difference,
		GrowthPercent:   growth,
	}
}

// DetectCategoryAnomalies flags expense categories whose reference-month
// spend exceeds 125% of their average over the preceding three full calendar
// months. The average divides by the count of distinct months in which the
// category had any spend, never less than 1.
func (s *patternService) DetectCategoryAnomalies(transactions []models.Transaction, referenceDate time.Time) []models.CategoryAnomaly {
	currentStart := monthStart(referenceDate)
	lookbackStart := currentStart.AddDate(0, -anomalyLookbackMonths, 0)

	type categoryHistory struct {
		current      decimal.Decimal
		past         decimal.Decimal
		activeMonths map[string]struct{}
	}

	histories := make(map[string]*categoryHistory)
	order := make([]string, 0)

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() || txn.CategoryID == "" {
			continue
		}

		history, ok := histories[txn.CategoryID]
		if !ok {
			history = &categoryHistory{
				current:      decimal.Zero,
				past:         decimal.Zero,
				activeMonths: make(map[string]struct{}),
			}
			histories[txn.CategoryID] = history
			order = append(order, txn.CategoryID)
		}

		switch {
		case txn.InMonth(referenceDate):
			history.current = history.current.Add(txn.Amount)
		case !txn.Date.Before(lookbackStart) && txn.Date.Before(currentStart):
			history.past = history.past.Add(txn.Amount)
			history.activeMonths[monthKey(txn.Date)] = struct{}{}
		}
	}

	sort.Strings(order)

	anomalies := make([]models.CategoryAnomaly, 0)
	for _, categoryID := range order {
		history := histories[categoryID]

		divisor := len(history.activeMonths)
		if divisor < 1 {
			divisor = 1
		}
		average := history.past.Div(decimal.NewFromInt(int64(divisor)))

		if average.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if history.current.LessThanOrEqual(average.Mul(anomalyThresholdDec)) {
			continue
		}

		// Risk grading reads the raw excess; rounding is display only.
		excess := history.current.Sub(average).Div(average).InexactFloat64() * 100
		riskLevel := models.RiskLevelMedium
		if excess > 50 {
			riskLevel = models.RiskLevelHigh
		}
		percentAbove := int(math.Round(excess))

		anomalies = append(anomalies, models.CategoryAnomaly{
			CategoryID:      categoryID,
			CurrentSpend:    history.current,
			HistoricAverage: average,
			PercentAboveAvg: percentAbove,
			RiskLevel:       riskLevel,
		})
	}

	return anomalies
}

// TopExpenses ranks the reference month's expense totals per category and
// returns the five largest.
func (s *patternService) TopExpenses(transactions []models.Transaction, referenceDate time.Time) []models.CategoryExpense {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() || !txn.InMonth(referenceDate) {
			continue
		}

		categoryID := txn.CategoryID
		if categoryID == "" {
			categoryID = "outros"
		}

		if _, ok := totals[categoryID]; !ok {
			order = append(order, categoryID)
		}
		totals[categoryID] = totals[categoryID].Add(txn.Amount)
	}

	expenses := make([]models.CategoryExpense, 0, len(order))
	for _, categoryID := range order {
		expenses = append(expenses, models.CategoryExpense{
			CategoryID: categoryID,
			Total:      totals[categoryID],
		})
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Total.GreaterThan(expenses[j].Total)
	})

	if len(expenses) > topExpensesLimit {
		expenses = expenses[:topExpensesLimit]
	}

	return expenses
}

// ProjectNextMonth averages the net balances of the three months preceding
// the reference month and nudges the average by half the two-point trend.
// Confidence is binary: 85 when all three historical balances were positive,
// 60 otherwise.
func (s *patternService) ProjectNextMonth(transactions []models.Transaction, referenceDate time.Time) models.NextMonthProjection {
	balances := make([]decimal.Decimal, 0, anomalyLookbackMonths)
	for offset := -3; offset <= -1; offset++ {
		month := monthStart(referenceDate).AddDate(0, offset, 0)
		income, expense := models.MonthTotals(transactions, month)
		balances = append(balances, income.Sub(expense))
	}

	sum := decimal.Zero
	allPositive := true
	for _, balance := range balances {
		sum = sum.Add(balance)
		if !balance.IsPositive() {
			allPositive = false
		}
	}
	average := sum.Div(decimal.NewFromInt(int64(len(balances))))

	trend := balances[len(balances)-1].Sub(balances[0]).
		Div(decimal.NewFromInt(int64(len(balances) - 1)))

	projected := average.Add(trend.Div(decimal.NewFromInt(2)))

	confidence := confidenceLow
	if allPositive {
		confidence = confidenceHigh
	}

	return models.NextMonthProjection{
		ProjectedBalance: projected,
		AverageBalance:   average,
		Trend:            trend,
		Confidence:       confidence,
		DeficitRisk:      projected.IsNegative(),
	}
}

// CalculateHealthScore builds the composite 0-100 score: savings rate weighs
// 40 points (a 30% rate fills the component), stability 25 (positive month),
// growth 25 (month-over-month growth clamped to [0,100]) and spending
// control 10 (halved when a high-risk anomaly exists).
func (s *patternService) CalculateHealthScore(transactions []models.Transaction, referenceDate time.Time) models.FinancialHealthScore {
	cashFlow := s.AnalyzeCashFlow(transactions, referenceDate)
	anomalies := s.DetectCategoryAnomalies(transactions, referenceDate)

	savingsRate := 0.0
	if cashFlow.CurrentIncome.IsPositive() {
		savingsRate = cashFlow.CurrentBalance.Div(cashFlow.CurrentIncome).InexactFloat64() * 100
	}

	savingsComponent := clampFloat(savingsRate, 0, 30) / 30 * 40

	stabilityComponent := 0.0
	if cashFlow.CurrentBalance.IsPositive() {
		stabilityComponent = 25
	}

	growthComponent := clampFloat(cashFlow.GrowthPercent, 0, 100) * 0.25

	controlComponent := 10.0
	for _, anomaly := range anomalies {
		if anomaly.RiskLevel == models.RiskLevelHigh {
			controlComponent = 5
			break
		}
	}

	score := int(math.Round(savingsComponent + stabilityComponent + growthComponent + controlComponent))
	classification := classificationForScore(score)

	return models.FinancialHealthScore{
		Score:          score,
		Classification: classification,
		Components: models.ScoreComponents{
			Savings:   savingsComponent,
			Stability: stabilityComponent,
			Growth:    growthComponent,
			Control:   controlComponent,
		},
		Recommendations: classRecommendations[classification],
	}
}

// GenerateMonthlyReport assembles the narrative report for the reference
// month. The assembly is plain conditional concatenation: identical input
// yields an identical report.
func (s *patternService) GenerateMonthlyReport(transactions []models.Transaction, referenceDate time.Time) models.MonthlyReport {
	cashFlow := s.AnalyzeCashFlow(transactions, referenceDate)
	anomalies := s.DetectCategoryAnomalies(transactions, referenceDate)
	topExpenses := s.TopExpenses(transactions, referenceDate)
	projection := s.ProjectNextMonth(transactions, referenceDate)
	healthScore := s.CalculateHealthScore(transactions, referenceDate)

	positives := make([]string, 0)
	if cashFlow.CurrentBalance.IsPositive() {
		positives = append(positives, fmt.Sprintf("Saldo positivo de R$ %s no mês", cashFlow.CurrentBalance.StringFixed(2)))
	}
	if cashFlow.GrowthPercent > 0 {
		positives = append(positives, fmt.Sprintf("Crescimento de %.1f%% em relação ao mês anterior", cashFlow.GrowthPercent))
	}
	if cashFlow.CurrentIncome.IsPositive() {
		rate := cashFlow.CurrentBalance.Div(cashFlow.CurrentIncome).InexactFloat64() * 100
		if rate >= 20 {
			positives = append(positives, fmt.Sprintf("Taxa de poupança de %.0f%%, acima da meta de 20%%", rate))
		}
	}

	attention := make([]string, 0)
	if cashFlow.CurrentBalance.IsNegative() {
		attention = append(attention, fmt.Sprintf("Saldo negativo de R$ %s no mês", cashFlow.CurrentBalance.Abs().StringFixed(2)))
	}
	if math.Abs(cashFlow.GrowthPercent) > bigSwingPercent {
		attention = append(attention, fmt.Sprintf("Variação brusca de %.1f%% no fluxo de caixa", cashFlow.GrowthPercent))
	}
	for _, anomaly := range anomalies {
		attention = append(attention, fmt.Sprintf("Gastos em %s %d%% acima da média histórica", anomaly.CategoryID, anomaly.PercentAboveAvg))
	}

	trends := make([]string, 0, 2)
	trends = append(trends, fmt.Sprintf("Saldo projetado para o próximo mês: R$ %s", projection.ProjectedBalance.StringFixed(2)))
	if projection.DeficitRisk {
		trends = append(trends, "Risco de déficit no próximo mês: reduza despesas para evitar saldo negativo")
	}

	return models.MonthlyReport{
		Month:           fullMonthLabel(referenceDate),
		CashFlow:        cashFlow,
		HealthScore:     healthScore,
		Anomalies:       anomalies,
		TopExpenses:     topExpenses,
		Projection:      projection,
		PositivePoints:  positives,
		AttentionPoints: attention,
		Trends:          trends,
		Recommendations: healthScore.Recommendations,
	}
}

func classificationForScore(score int) string {
	switch {
	case score >= 80:
		return models.ClassDiamond
	case score >= 60:
		return models.ClassGold
	case score >= 40:
		return models.ClassSilver
	default:
		return models.ClassBronze
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
