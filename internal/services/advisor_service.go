package services

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"fincompass/internal/models"

	"github.com/shopspring/decimal"
)

const (
	wantsShareLimit      = 30
	reserveRunwayTarget  = 3
	investSavingsRateBar = 25
	lowRunwayInsightBar  = 2
)

// Keyword fallback for classifying spend into needs and wants. Category
// assignments passed to NewAdvisorService take precedence; the keywords only
// apply to transactions without a mapped category. Unmatched spend is always
// bucketed as essential, never as discretionary.
var (
	needsKeywords = []string{"aluguel", "luz", "internet", "mercado"}
	wantsKeywords = []string{"ifood", "netflix", "lazer"}
)

// Fixed diagnosis narratives keyed by score band.
var diagnosisNarratives = map[string]string{
	models.StatusExcellent: "Sua saúde financeira está excelente. Mantenha o ritmo de poupança e considere diversificar seus investimentos.",
	models.StatusGood:      "Sua saúde financeira está boa, mas há espaço para melhorar. Pequenos ajustes nos gastos aceleram suas metas.",
	models.StatusWarning:   "Atenção: suas finanças exigem cuidado. Revise os gastos recorrentes e priorize a construção de uma reserva.",
	models.StatusCritical:  "Situação crítica: seus gastos estão comprometendo seu equilíbrio financeiro. Corte despesas não essenciais imediatamente.",
}

type advisorService struct {
	scorer  HealthScoreServiceInterface
	buckets map[string]models.ExpenseBucket
}

// NewAdvisorService creates a new AdvisorServiceInterface instance. buckets
// maps category identifiers to an expense bucket and may be nil, in which
// case only the keyword fallback applies.
func NewAdvisorService(scorer HealthScoreServiceInterface, buckets map[string]models.ExpenseBucket) AdvisorServiceInterface {
	return &advisorService{
		scorer:  scorer,
		buckets: buckets,
	}
}

// Diagnose combines the advisor-variant health score with needs/wants
// bucketing into the full diagnosis rendered on the guidance panel.
func (s *advisorService) Diagnose(transactions []models.Transaction, balance, income, expense decimal.Decimal) models.FinancialDiagnosis {
	health := s.scorer.Score(balance, income, expense, models.ScoreVariantAdvisor)

	needsTotal, wantsTotal := s.bucketTotals(transactions)
	benchmarks := models.Benchmarks{
		Needs:   sharePercent(needsTotal, income),
		Wants:   sharePercent(wantsTotal, income),
		Savings: int(math.Round(health.SavingsRate)),
	}

	diagnosis := models.FinancialDiagnosis{
		Score:           health.Score,
		Status:          health.Status,
		Diagnosis:       diagnosisNarratives[health.Status],
		Benchmarks:      benchmarks,
		Insights:        s.buildInsights(health),
		Recommendations: s.buildRecommendations(health, benchmarks),
	}

	slog.Debug("diagnosis generated",
		"score", diagnosis.Score,
		"status", diagnosis.Status,
		"recommendations", len(diagnosis.Recommendations))

	return diagnosis
}

// bucketTotals sums expense transactions into the needs and wants buckets.
func (s *advisorService) bucketTotals(transactions []models.Transaction) (needs, wants decimal.Decimal) {
	needs = decimal.Zero
	wants = decimal.Zero

	for i := range transactions {
		txn := &transactions[i]
		if !txn.IsExpense() {
			continue
		}

		if s.classify(txn) == models.BucketWants {
			wants = wants.Add(txn.Amount)
		} else {
			needs = needs.Add(txn.Amount)
		}
	}

	return needs, wants
}

func (s *advisorService) classify(txn *models.Transaction) models.ExpenseBucket {
	if txn.CategoryID != "" {
		if bucket, ok := s.buckets[txn.CategoryID]; ok {
			return bucket
		}
	}

	description := strings.ToLower(txn.Description)
	for _, keyword := range needsKeywords {
		if strings.Contains(description, keyword) {
			return models.BucketNeeds
		}
	}
	for _, keyword := range wantsKeywords {
		if strings.Contains(description, keyword) {
			return models.BucketWants
		}
	}

	return models.BucketNeeds
}

func (s *advisorService) buildInsights(health models.HealthScore) []models.Insight {
	insights := make([]models.Insight, 0, 2)

	switch {
	case health.SavingsRate >= 20:
		insights = append(insights, models.Insight{
			Type: models.InsightPositive,
			Text: fmt.Sprintf("Você poupa %.0f%% da sua renda, acima da meta de 20%%.", health.SavingsRate),
		})
	case health.SavingsRate > 0:
		insights = append(insights, models.Insight{
			Type: models.InsightNeutral,
			Text: fmt.Sprintf("Você poupa %.0f%% da sua renda. A meta recomendada é 20%%.", health.SavingsRate),
		})
	default:
		insights = append(insights, models.Insight{
			Type: models.InsightNegative,
			Text: "Seus gastos estão iguais ou maiores que sua renda neste período.",
		})
	}

	if health.RunwayMonths < lowRunwayInsightBar {
		insights = append(insights, models.Insight{
			Type: models.InsightNegative,
			Text: "Sua reserva cobre menos de 2 meses de despesas.",
		})
	}

	return insights
}

func (s *advisorService) buildRecommendations(health models.HealthScore, benchmarks models.Benchmarks) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0, 3)

	if benchmarks.Wants > wantsShareLimit {
		recommendations = append(recommendations, models.Recommendation{
			ID:          "reduce-wants",
			Title:       "Reduza gastos supérfluos",
			Description: fmt.Sprintf("Seus gastos com desejos estão em %d%% da renda, acima dos 30%% recomendados.", benchmarks.Wants),
			ActionLabel: "Ver gastos",
			Impact:      models.ImpactHigh,
			Icon:        models.IconTrendingDown,
		})
	}

	if health.RunwayMonths < reserveRunwayTarget {
		recommendations = append(recommendations, models.Recommendation{
			ID:          "build-reserve",
			Title:       "Construa sua reserva de emergência",
			Description: "Sua reserva atual cobre menos de 3 meses de despesas. O ideal são 6 meses.",
			ActionLabel: "Criar meta",
			Impact:      models.ImpactHigh,
			Icon:        models.IconShieldAlert,
		})
	}

	if health.SavingsRate > investSavingsRateBar {
		recommendations = append(recommendations, models.Recommendation{
			ID:          "invest-surplus",
			Title:       "Invista o excedente",
			Description: fmt.Sprintf("Com %.0f%% de sobra mensal, seu dinheiro parado perde valor para a inflação.", health.SavingsRate),
			ActionLabel: "Conhecer opções",
			Impact:      models.ImpactMedium,
			Icon:        models.IconTrendingUp,
		})
	}

	return recommendations
}

// sharePercent returns part/whole as a rounded percentage, 0 when whole is
// not positive.
func sharePercent(part, whole decimal.Decimal) int {
	if whole.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(math.Round(part.Div(whole).InexactFloat64() * 100))
}
