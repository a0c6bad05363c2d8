package models

import "github.com/shopspring/decimal"

// Score weighting variants. Two weightings shipped historically; the advisor
// weighting is the authoritative default and the metrics weighting is kept as
// a selectable legacy alternative.
type ScoreVariant string

const (
	ScoreVariantAdvisor ScoreVariant = "advisor"
	ScoreVariantMetrics ScoreVariant = "metrics"
)

// IsValidScoreVariant checks if the score variant is known
func IsValidScoreVariant(v string) bool {
	switch ScoreVariant(v) {
	case ScoreVariantAdvisor, ScoreVariantMetrics:
		return true
	default:
		return false
	}
}

// Health status labels, keyed by score band.
const (
	StatusExcellent = "Excelente"
	StatusGood      = "Bom"
	StatusWarning   = "Alerta"
	StatusCritical  = "Crítico"
)

// HealthScore is the scorer output. SavingsRate is the internal (possibly
// negative) rate in percent; DisplaySavingsRate is floored at zero for
// rendering. RunwayLabel carries the "24+" sentinel when the runway exceeds
// 24 months.
type HealthScore struct {
	Score              int             `json:"score"`
	Status             string          `json:"status"`
	SavingsRate        float64         `json:"savings_rate"`
	DisplaySavingsRate float64         `json:"display_savings_rate"`
	MonthlyBurn        decimal.Decimal `json:"monthly_burn"`
	RunwayMonths       float64         `json:"runway_months"`
	RunwayLabel        string          `json:"runway_label"`
}

// Expense buckets for the 50/30/20 heuristic.
type ExpenseBucket string

const (
	BucketNeeds ExpenseBucket = "needs"
	BucketWants ExpenseBucket = "wants"
)

// Benchmarks are the realized needs/wants/savings shares of income, in
// rounded percent. Needs and wants need not sum to 100; savings are the
// remainder of income not spent.
type Benchmarks struct {
	Needs   int `json:"needs"`
	Wants   int `json:"wants"`
	Savings int `json:"savings"`
}

const (
	InsightPositive = "positive"
	InsightNeutral  = "neutral"
	InsightNegative = "negative"
)

// Insight is a short human-readable observation about the period.
type Insight struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Recommendation icon keys, matched by the presentation layer's icon set.
const (
	IconTrendingDown = "TrendingDown"
	IconShieldAlert  = "ShieldAlert"
	IconPieChart     = "PieChart"
	IconZap          = "Zap"
	IconTrendingUp   = "TrendingUp"
)

const (
	ImpactHigh   = "alta"
	ImpactMedium = "média"
)

// Recommendation is an actionable suggestion with a stable identifier.
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionLabel string `json:"actionLabel"`
	Impact      string `json:"impact"`
	Icon        string `json:"icon"`
}

// FinancialDiagnosis is the advisor output rendered on the guidance panel.
type FinancialDiagnosis struct {
	Score           int              `json:"score"`
	Status          string           `json:"status"`
	Diagnosis       string           `json:"diagnosis"`
	Benchmarks      Benchmarks       `json:"benchmarks"`
	Insights        []Insight        `json:"insights"`
	Recommendations []Recommendation `json:"recommendations"`
}
