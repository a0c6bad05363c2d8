package models

import "github.com/shopspring/decimal"

const (
	ForecastRiskHigh   = "high"
	ForecastRiskMedium = "medium"
	ForecastRiskLow    = "low"
)

// ForecastPoint is one month of the projected cash-flow series. The first
// point of a series is the current month and carries the real wallet balance;
// every later point is a prediction.
type ForecastPoint struct {
	Month        string          `json:"month"`
	MonthName    string          `json:"monthName"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Balance      decimal.Decimal `json:"balance"`
	IsPrediction bool            `json:"isPrediction"`
	BestCase     decimal.Decimal `json:"bestCase"`
	WorstCase    decimal.Decimal `json:"worstCase"`
}

// CashFlowForecast bundles the forecast series with the scenario bands and
// risk classification the presentation layer renders.
type CashFlowForecast struct {
	Points []ForecastPoint `json:"points"`
	Risk   string          `json:"risk"`
}
