package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "fincompass/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts panics into a SYSTEM_001 response instead of tearing
// down the connection, and logs the stack.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered",
						"error", fmt.Sprintf("%v", r),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
						"trace_id", GetTraceID(c),
						"stack", string(debug.Stack()))

					response := apierrors.NewErrorResponse(
						apierrors.SystemInternalError,
						GetTraceID(c),
					)
					err = c.JSON(http.StatusInternalServerError, response)
				}
			}()
			return next(c)
		}
	}
}
