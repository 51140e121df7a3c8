// Package handler contains the echo request handlers.
package handler

import (
	"net/http"

	"forno/internal/delivery/http/middleware"
	"forno/internal/delivery/http/response"
	"forno/internal/domain/entity"
	domainerrors "forno/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// currentUserID extracts the authenticated caller's identity id set by the
// auth middleware.
func currentUserID(c echo.Context) (string, error) {
	uid, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || uid == "" {
		return "", domainerrors.ErrUnauthorized
	}

	return uid, nil
}

// currentProfile extracts the caller's staff profile set by the approval
// middleware.
func currentProfile(c echo.Context) (*entity.StaffProfile, error) {
	profile, ok := c.Get(middleware.ContextKeyProfile).(*entity.StaffProfile)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return profile, nil
}
