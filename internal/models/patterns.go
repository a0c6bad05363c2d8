package models

import "github.com/shopspring/decimal"

// Pattern-analyzer outputs keep the Portuguese field names and labels the
// report screens were built against.

const (
	RiskLevelHigh   = "alto"
	RiskLevelMedium = "médio"
)

const (
	ClassDiamond = "Diamante"
	ClassGold    = "Ouro"
	ClassSilver  = "Prata"
	ClassBronze  = "Bronze"
)

// CashFlowAnalysis compares the reference month with the month before it.
type CashFlowAnalysis struct {
	CurrentIncome   decimal.Decimal `json:"receita_atual"`
	CurrentExpense  decimal.Decimal `json:"despesa_atual"`
	CurrentBalance  decimal.Decimal `json:"saldo_atual"`
	PreviousIncome  decimal.Decimal `json:"receita_anterior"`
	PreviousExpense decimal.Decimal `json:"despesa_anterior"`
	PreviousBalance decimal.Decimal `json:"saldo_anterior"`
	Difference      decimal.Decimal `json:"diferenca"`
	GrowthPercent   float64         `json:"percentual_crescimento"`
}

// CategoryAnomaly flags a category whose current-month spend exceeds 125% of
// its recent historical average.
type CategoryAnomaly struct {
	CategoryID       string          `json:"categoria"`
	CurrentSpend     decimal.Decimal `json:"gasto_atual"`
	HistoricAverage  decimal.Decimal `json:"media_historica"`
	PercentAboveAvg  int             `json:"percentual_acima_media"`
	RiskLevel        string          `json:"nivel_risco"`
}

// CategoryExpense is one entry of the top-expenses ranking.
type CategoryExpense struct {
	CategoryID string          `json:"categoria"`
	Total      decimal.Decimal `json:"total"`
}

// NextMonthProjection is a simple linear projection of the next month's net
// balance from the last three monthly balances.
type NextMonthProjection struct {
	ProjectedBalance decimal.Decimal `json:"saldo_projetado"`
	AverageBalance   decimal.Decimal `json:"media_saldos"`
	Trend            decimal.Decimal `json:"tendencia"`
	Confidence       int             `json:"confianca"`
	DeficitRisk      bool            `json:"risco_deficit"`
}

// ScoreComponents breaks the composite score into its weighted parts.
type ScoreComponents struct {
	Savings   float64 `json:"poupanca"`
	Stability float64 `json:"estabilidade"`
	Growth    float64 `json:"crescimento"`
	Control   float64 `json:"controle"`
}

// FinancialHealthScore is the composite 0-100 score with its classification
// band and the band's fixed recommendation list.
type FinancialHealthScore struct {
	Score           int             `json:"score"`
	Classification  string          `json:"classificacao"`
	Components      ScoreComponents `json:"componentes"`
	Recommendations []string        `json:"recomendacoes"`
}

// MonthlyReport is the assembled narrative report for one calendar month.
type MonthlyReport struct {
	Month           string               `json:"mes"`
	CashFlow        CashFlowAnalysis     `json:"fluxo_caixa"`
	HealthScore     FinancialHealthScore `json:"score_saude"`
	Anomalies       []CategoryAnomaly    `json:"anomalias"`
	TopExpenses     []CategoryExpense    `json:"maiores_gastos"`
	Projection      NextMonthProjection  `json:"projecao"`
	PositivePoints  []string             `json:"pontos_positivos"`
	AttentionPoints []string             `json:"pontos_atencao"`
	Trends          []string             `json:"tendencias"`
	Recommendations []string             `json:"recomendacoes"`
}
