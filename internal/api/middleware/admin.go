package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devsolutions/intake-api/internal/api/metrics"
	"github.com/devsolutions/intake-api/internal/core/domain"
	"github.com/devsolutions/intake-api/internal/core/ports"
)

// CtxAdminProfile holds the *domain.AdminProfile set by AdminGate.
const CtxAdminProfile = "admin_profile"

// AdminGate authorizes an authenticated user for the admin area by looking
// up their admin profile. Runs after Auth.
//
// A user without a profile gets 403 and their token is revoked on the spot.
func AdminGate(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" {
				metrics.AdminGateDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			profile, err := auth.Authorize(c.Request().Context(), userID)
			if err != nil {
				if err == domain.ErrNotAdmin {
					forceSignOut(c, auth, log)
					metrics.AdminGateDeniedTotal.WithLabelValues("no_profile").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "admin access required")
				}
				return err
			}

			c.Set(CtxAdminProfile, profile)
			return next(c)
		}
	}
}

// forceSignOut revokes the current token. Failure to revoke is logged but
// does not change the response: the request is denied either way.
func forceSignOut(c echo.Context, auth ports.AuthService, log zerolog.Logger) {
	tokenID, _ := c.Get(CtxTokenID).(string)
	expiresAt, _ := c.Get(CtxTokenExp).(time.Time)
	if tokenID == "" {
		return
	}
	if err := auth.Logout(c.Request().Context(), tokenID, expiresAt); err != nil {
		log.Warn().Err(err).Str("token_id", tokenID).Msg("failed to revoke non-admin session")
		return
	}
	log.Info().Str("user_id", c.Get(CtxUserID).(string)).Msg("non-admin session terminated")
}
