package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devsolutions/intake-api/internal/api/middleware"
	"github.com/devsolutions/intake-api/internal/core/domain"
)

// ctxAdminProfile extracts the profile injected by the AdminGate middleware.
// Absent means the gate never ran on this route.
func ctxAdminProfile(c echo.Context) (*domain.AdminProfile, error) {
	profile, ok := c.Get(middleware.CtxAdminProfile).(*domain.AdminProfile)
	if !ok || profile == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return profile, nil
}

// ctxToken extracts the token claims injected by the Auth middleware.
func ctxToken(c echo.Context) (tokenID string, expiresAt time.Time, err error) {
	tokenID, _ = c.Get(middleware.CtxTokenID).(string)
	if tokenID == "" {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	expiresAt, _ = c.Get(middleware.CtxTokenExp).(time.Time)
	return tokenID, expiresAt, nil
}
