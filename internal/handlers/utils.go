package handlers

import (
	"net/http"
	"time"

	apierrors "fincompass/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDHeader identifies the caller. Authentication and access control live
// in the hosting platform; by the time a request reaches this service the
// identity is already established, so the handlers only parse it.
const UserIDHeader = "X-User-ID"

// currentUserID extracts the caller's user ID from the request header. A
// missing or malformed header yields a 400 response error.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return uuid.Nil, SendError(c, http.StatusBadRequest, apierrors.ValidationRequiredField,
			apierrors.WithDetails(UserIDHeader+" header is required"))
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, SendError(c, http.StatusBadRequest, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails(UserIDHeader+" must be a UUID"))
	}

	return userID, nil
}

// monthStart returns midnight on the first day of t's calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
