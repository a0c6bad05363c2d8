package handlers

import (
	"log/slog"
	"net/http"
	"time"

	apierrors "fincompass/internal/errors"
	"fincompass/internal/models"
	"fincompass/internal/repositories"
	"fincompass/internal/services"
	"fincompass/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// InsightsHandler exposes the analytical engine over HTTP. Every endpoint is
// a read: it loads the caller's history, runs the pure analysis and returns
// the derived structure untouched.
type InsightsHandler struct {
	walletRepo      repositories.WalletRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	forecastService services.ForecastServiceInterface
	scoreService    services.HealthScoreServiceInterface
	advisorService  services.AdvisorServiceInterface
	patternService  services.PatternServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(
	walletRepo repositories.WalletRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	forecastService services.ForecastServiceInterface,
	scoreService services.HealthScoreServiceInterface,
	advisorService services.AdvisorServiceInterface,
	patternService services.PatternServiceInterface,
	metrics services.MetricsRecorderInterface,
) *InsightsHandler {
	return &InsightsHandler{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		forecastService: forecastService,
		scoreService:    scoreService,
		advisorService:  advisorService,
		patternService:  patternService,
		metrics:         metrics,
	}
}

type forecastQuery struct {
	Months    int    `query:"months" validate:"min=0,max=36"`
	Reference string `query:"reference" validate:"reference_date"`
}

type referenceQuery struct {
	Reference string `query:"reference" validate:"reference_date"`
}

type healthQuery struct {
	Variant   string `query:"variant" validate:"score_variant"`
	Reference string `query:"reference" validate:"reference_date"`
}

// GetForecast handles GET /api/v1/insights/forecast
func (h *InsightsHandler) GetForecast(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	query := forecastQuery{Months: services.DefaultForecastMonths}
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	now := referenceOrNow(query.Reference)
	started := time.Now()

	transactions, err := h.transactionRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to load transactions for forecast", "user_id", userID, "error", err)
		h.metrics.RecordAnalysis("forecast", "error", time.Since(started))
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	balance, err := h.walletRepo.GetTotalBalanceByUserID(userID)
	if err != nil {
		slog.Error("failed to load wallet balance for forecast", "user_id", userID, "error", err)
		h.metrics.RecordAnalysis("forecast", "error", time.Since(started))
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	points := h.forecastService.Forecast(transactions, balance, query.Months, now)
	points = h.forecastService.ApplyScenarioBands(points)
	risk := h.forecastService.ClassifyRisk(points, balance)

	h.metrics.RecordAnalysis("forecast", "ok", time.Since(started))

	return SendSuccess(c, models.CashFlowForecast{
		Points: points,
		Risk:   risk,
	})
}

// GetHealthScore handles GET /api/v1/insights/health
func (h *InsightsHandler) GetHealthScore(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	query := healthQuery{}
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	variant := models.ScoreVariantAdvisor
	if query.Variant != "" {
		variant = models.ScoreVariant(query.Variant)
	}

	now := referenceOrNow(query.Reference)
	started := time.Now()

	transactions, balance, err := h.loadHistory(c, userID)
	if err != nil {
		h.metrics.RecordAnalysis("health", "error", time.Since(started))
		return err
	}

	income, expense := models.MonthTotals(transactions, now)
	score := h.scoreService.Score(balance, income, expense, variant)

	h.metrics.RecordAnalysis("health", "ok", time.Since(started))

	return SendSuccess(c, score)
}

// GetDiagnosis handles GET /api/v1/insights/diagnosis
func (h *InsightsHandler) GetDiagnosis(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	query := referenceQuery{}
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	now := referenceOrNow(query.Reference)
	started := time.Now()

	transactions, balance, err := h.loadHistory(c, userID)
	if err != nil {
		h.metrics.RecordAnalysis("diagnosis", "error", time.Since(started))
		return err
	}

	income, expense := models.MonthTotals(transactions, now)
	diagnosis := h.advisorService.Diagnose(transactions, balance, income, expense)

	h.metrics.RecordAnalysis("diagnosis", "ok", time.Since(started))

	return SendSuccess(c, diagnosis)
}

// GetCashFlow handles GET /api/v1/insights/cashflow
func (h *InsightsHandler) GetCashFlow(c echo.Context) error {
	return h.patternEndpoint(c, "cashflow", func(transactions []models.Transaction, ref time.Time) (interface{}, error) {
		return h.patternService.AnalyzeCashFlow(transactions, ref), nil
	})
}

// GetAnomalies handles GET /api/v1/insights/anomalies
func (h *InsightsHandler) GetAnomalies(c echo.Context) error {
	return h.patternEndpoint(c, "anomalies", func(transactions []models.Transaction, ref time.Time) (interface{}, error) {
		anomalies := h.patternService.DetectCategoryAnomalies(transactions, ref)
		h.metrics.RecordAnomalies(len(anomalies))
		return anomalies, nil
	})
}

// GetTopExpenses handles GET /api/v1/insights/top-expenses
func (h *InsightsHandler) GetTopExpenses(c echo.Context) error {
	return h.patternEndpoint(c, "top_expenses", func(transactions []models.Transaction, ref time.Time) (interface{}, error) {
		return h.patternService.TopExpenses(transactions, ref), nil
	})
}

// GetProjection handles GET /api/v1/insights/projection
func (h *InsightsHandler) GetProjection(c echo.Context) error {
	return h.patternEndpoint(c, "projection", func(transactions []models.Transaction, ref time.Time) (interface{}, error) {
		return h.patternService.ProjectNextMonth(transactions, ref), nil
	})
}

// GetMonthlyReport handles GET /api/v1/insights/report
func (h *InsightsHandler) GetMonthlyReport(c echo.Context) error {
	return h.patternEndpoint(c, "report", func(transactions []models.Transaction, ref time.Time) (interface{}, error) {
		report := h.patternService.GenerateMonthlyReport(transactions, ref)
		h.metrics.RecordReportScore(report.HealthScore.Score)
		return report, nil
	})
}

func (h *InsightsHandler) patternEndpoint(c echo.Context, kind string, analyze func([]models.Transaction, time.Time) (interface{}, error)) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	query := referenceQuery{}
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	now := referenceOrNow(query.Reference)
	started := time.Now()

	// Pattern analyses only read the reference month and the three full
	// months before it, so only that window is loaded.
	windowStart := monthStart(now).AddDate(0, -3, 0)
	windowEnd := monthStart(now).AddDate(0, 1, 0)

	transactions, err := h.transactionRepo.GetByDateRange(userID, windowStart, windowEnd)
	if err != nil {
		slog.Error("failed to load transactions for analysis",
			"kind", kind, "user_id", userID, "error", err)
		h.metrics.RecordAnalysis(kind, "error", time.Since(started))
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	result, err := analyze(transactions, now)
	if err != nil {
		h.metrics.RecordAnalysis(kind, "error", time.Since(started))
		return SendSystemError(c, apierrors.SystemInternalError)
	}

	h.metrics.RecordAnalysis(kind, "ok", time.Since(started))

	return SendSuccess(c, result)
}

func (h *InsightsHandler) loadHistory(c echo.Context, userID uuid.UUID) ([]models.Transaction, decimal.Decimal, error) {
	transactions, err := h.transactionRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to load transactions", "user_id", userID, "error", err)
		return nil, decimal.Zero, SendSystemError(c, apierrors.SystemDatabaseError)
	}

	balance, err := h.walletRepo.GetTotalBalanceByUserID(userID)
	if err != nil {
		slog.Error("failed to load wallet balance", "user_id", userID, "error", err)
		return nil, decimal.Zero, SendSystemError(c, apierrors.SystemDatabaseError)
	}

	return transactions, balance, nil
}

func bindAndValidate(c echo.Context, query interface{}) error {
	if err := c.Bind(query); err != nil {
		return SendError(c, http.StatusBadRequest, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, validation.FormatErrors(err))
	}
	return nil
}

// referenceOrNow parses a YYYY-MM-DD reference date, falling back to the
// current time. The format is validated upstream.
func referenceOrNow(reference string) time.Time {
	if reference == "" {
		return time.Now()
	}
	parsed, err := time.Parse("2006-01-02", reference)
	if err != nil {
		return time.Now()
	}
	return parsed
}
