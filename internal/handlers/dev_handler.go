package handlers

import (
	"log/slog"
	"net/http"
	"time"

	apierrors "fincompass/internal/errors"
	"fincompass/internal/repositories"
	"fincompass/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSeedMonths = 6

// DevHandler exposes development-only helpers. It is registered only when
// the environment is not production.
type DevHandler struct {
	walletRepo      repositories.WalletRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	sampleData      services.SampleDataServiceInterface
}

// NewDevHandler creates a new dev handler
func NewDevHandler(
	walletRepo repositories.WalletRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	sampleData services.SampleDataServiceInterface,
) *DevHandler {
	return &DevHandler{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		sampleData:      sampleData,
	}
}

type seedQuery struct {
	Months int `query:"months" validate:"min=1,max=24"`
}

// SeedSampleData handles POST /api/v1/dev/seed. It replaces the caller's
// wallets and history with generated demo data.
func (h *DevHandler) SeedSampleData(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	query := seedQuery{Months: defaultSeedMonths}
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	wallets, transactions := h.sampleData.GenerateHistory(userID, query.Months, time.Now())

	if err := h.transactionRepo.DeleteByUserID(userID); err != nil {
		slog.Error("failed to clear transactions before seeding", "user_id", userID, "error", err)
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}
	if err := h.walletRepo.DeleteByUserID(userID); err != nil {
		slog.Error("failed to clear wallets before seeding", "user_id", userID, "error", err)
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	if err := h.walletRepo.CreateBatch(wallets); err != nil {
		slog.Error("failed to seed wallets", "user_id", userID, "error", err)
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}
	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		slog.Error("failed to seed transactions", "user_id", userID, "error", err)
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	slog.Info("sample data seeded",
		"user_id", userID,
		"months", query.Months,
		"wallets", len(wallets),
		"transactions", len(transactions))

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "sample data generated",
		Data: map[string]int{
			"wallets":      len(wallets),
			"transactions": len(transactions),
		},
	})
}
