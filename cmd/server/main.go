package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fincompass/internal/config"
	"fincompass/internal/database"
	"fincompass/internal/handlers"
	"fincompass/internal/middleware"
	"fincompass/internal/repositories"
	"fincompass/internal/services"
	"fincompass/internal/validation"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	walletRepo := repositories.NewWalletRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	forecastService := services.NewForecastService()
	scoreService := services.NewHealthScoreService()
	advisorService := services.NewAdvisorService(scoreService, nil)
	patternService := services.NewPatternService()
	sampleDataService := services.NewSampleDataService(uint64(time.Now().UnixNano()))

	insightsHandler := handlers.NewInsightsHandler(
		walletRepo, transactionRepo,
		forecastService, scoreService, advisorService, patternService,
		metrics,
	)
	recordsHandler := handlers.NewRecordsHandler(walletRepo, transactionRepo)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewValidator()

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(rateLimiter.Middleware())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/wallets", recordsHandler.CreateWallet)
	api.GET("/wallets", recordsHandler.ListWallets)
	api.POST("/transactions", recordsHandler.CreateTransaction)
	api.GET("/transactions", recordsHandler.ListTransactions)

	insights := api.Group("/insights")
	insights.GET("/forecast", insightsHandler.GetForecast)
	insights.GET("/health", insightsHandler.GetHealthScore)
	insights.GET("/diagnosis", insightsHandler.GetDiagnosis)
	insights.GET("/cashflow", insightsHandler.GetCashFlow)
	insights.GET("/anomalies", insightsHandler.GetAnomalies)
	insights.GET("/top-expenses", insightsHandler.GetTopExpenses)
	insights.GET("/projection", insightsHandler.GetProjection)
	insights.GET("/report", insightsHandler.GetMonthlyReport)

	if !cfg.IsProduction() {
		devHandler := handlers.NewDevHandler(walletRepo, transactionRepo, sampleDataService)
		api.POST("/dev/seed", devHandler.SeedSampleData)
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server starting",
			"addr", server.Addr,
			"environment", cfg.Server.Environment,
			"db_driver", cfg.Database.Driver)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
