package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rakadenta/pomodoro-backend/internal/tokens"
)

const usernameKey = "username"

type BearerAuth struct {
	AccessSecret []byte
}

func NewBearerAuth(secret []byte) *BearerAuth {
	return &BearerAuth{AccessSecret: secret}
}

// RequireAuth authenticates the Authorization bearer token before any
// handler logic runs. Every failure mode (missing header, malformed token,
// bad signature, wrong issuer or audience, expiry, subject mismatch)
// collapses to the same 401 so callers cannot probe for the cause.
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		claims, err := tokens.ParseAccess(strings.TrimPrefix(header, prefix), m.AccessSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(usernameKey, claims.Username)
		return next(c)
	}
}

// UsernameFromContext returns the identity set by RequireAuth, empty when
// the request was not authenticated.
func UsernameFromContext(c echo.Context) string {
	username, _ := c.Get(usernameKey).(string)
	return username
}
