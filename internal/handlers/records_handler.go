package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	apierrors "fincompass/internal/errors"
	"fincompass/internal/models"
	"fincompass/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RecordsHandler is the write boundary for transactions and wallets. Records
// are validated here so the analytical core only ever sees well-formed data.
type RecordsHandler struct {
	walletRepo      repositories.WalletRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(
	walletRepo repositories.WalletRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) *RecordsHandler {
	return &RecordsHandler{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
	}
}

type createTransactionRequest struct {
	WalletID           string          `json:"wallet_id"`
	Type               string          `json:"type" validate:"required,transaction_type"`
	Amount             decimal.Decimal `json:"amount" validate:"required"`
	Date               string          `json:"date" validate:"required,reference_date"`
	Description        string          `json:"description"`
	IsRecurring        bool            `json:"is_recurring"`
	RecurrenceInterval string          `json:"recurrence_interval"`
	CategoryID         string          `json:"category_id"`
}

type createWalletRequest struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateTransaction handles POST /api/v1/transactions
func (h *RecordsHandler) CreateTransaction(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	request := createTransactionRequest{}
	if err := bindAndValidate(c, &request); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", request.Date)
	if err != nil {
		return SendError(c, http.StatusBadRequest, apierrors.ValidationInvalidDate)
	}

	walletID := uuid.Nil
	if request.WalletID != "" {
		walletID, err = uuid.Parse(request.WalletID)
		if err != nil {
			return SendError(c, http.StatusBadRequest, apierrors.WalletInvalidID)
		}
		if _, err := h.walletRepo.GetByID(walletID); err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return SendError(c, http.StatusNotFound, apierrors.WalletNotFound)
			}
			return SendSystemError(c, apierrors.SystemDatabaseError)
		}
	}

	transaction := &models.Transaction{
		UserID:             userID,
		WalletID:           walletID,
		Type:               request.Type,
		Amount:             request.Amount,
		Date:               date,
		Description:        request.Description,
		IsRecurring:        request.IsRecurring,
		RecurrenceInterval: request.RecurrenceInterval,
		CategoryID:         request.CategoryID,
	}

	if err := transaction.Validate(); err != nil {
		switch {
		case errors.Is(err, models.ErrNegativeAmount):
			return SendError(c, http.StatusBadRequest, apierrors.TransactionInvalidAmount)
		case errors.Is(err, models.ErrInvalidTransactionType):
			return SendError(c, http.StatusBadRequest, apierrors.TransactionInvalidType)
		default:
			return SendError(c, http.StatusBadRequest, apierrors.ValidationGeneral,
				apierrors.WithDetails(err.Error()))
		}
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction", "user_id", userID, "error", err)
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: transaction})
}

// ListTransactions handles GET /api/v1/transactions
func (h *RecordsHandler) ListTransactions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	transactions, err := h.transactionRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to list transactions", "user_id", userID, "error", err)
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	return SendSuccess(c, transactions)
}

// CreateWallet handles POST /api/v1/wallets
func (h *RecordsHandler) CreateWallet(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	request := createWalletRequest{}
	if err := bindAndValidate(c, &request); err != nil {
		return err
	}

	wallet := &models.Wallet{
		UserID:  userID,
		Name:    request.Name,
		Balance: request.Balance,
	}

	if err := h.walletRepo.Create(wallet); err != nil {
		slog.Error("failed to create wallet", "user_id", userID, "error", err)
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: wallet})
}

// ListWallets handles GET /api/v1/wallets
func (h *RecordsHandler) ListWallets(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	wallets, err := h.walletRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to list wallets", "user_id", userID, "error", err)
		return SendSystemError(c, apierrors.SystemDatabaseError)
	}

	return SendSuccess(c, wallets)
}
