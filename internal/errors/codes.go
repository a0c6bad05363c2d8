package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Wallet error codes (WALLET_*)
const (
	WalletNotFound  ErrorCode = "WALLET_001"
	WalletInvalidID ErrorCode = "WALLET_002"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
)

// Insight error codes (INSIGHT_*)
const (
	InsightInvalidVariant   ErrorCode = "INSIGHT_001"
	InsightInvalidHorizon   ErrorCode = "INSIGHT_002"
	InsightInvalidReference ErrorCode = "INSIGHT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format",

	WalletNotFound:  "Wallet not found",
	WalletInvalidID: "Invalid wallet identifier",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must not be negative",
	TransactionInvalidType:   "Transaction type must be income or expense",

	InsightInvalidVariant:   "Unknown score variant",
	InsightInvalidHorizon:   "Forecast horizon is out of allowed range",
	InsightInvalidReference: "Reference date must be an RFC 3339 date",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service is temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please slow down",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unexpected error occurred"
}
