package handlers

import (
	"net/http"

	apierrors "fincompass/internal/errors"
	"fincompass/internal/middleware"

	"github.com/labstack/echo/v4"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SendError sends a standardized client error response (4xx)
func SendError(c echo.Context, status int, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	response := apierrors.NewErrorResponse(code, middleware.GetTraceID(c), opts...)
	return c.JSON(status, response)
}

// SendValidationError sends a 400 with field-specific details
func SendValidationError(c echo.Context, fieldErrors map[string]string) error {
	response := apierrors.NewValidationError(fieldErrors, middleware.GetTraceID(c))
	return c.JSON(http.StatusBadRequest, response)
}

// SendSystemError sends a 500 without exposing internal details
func SendSystemError(c echo.Context, code apierrors.ErrorCode) error {
	response := apierrors.NewErrorResponse(code, middleware.GetTraceID(c))
	return c.JSON(http.StatusInternalServerError, response)
}

// SendSuccess sends a 200 with the given payload
func SendSuccess(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data})
}
