package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rakadenta/pomodoro-backend/internal/service"
)

// Responses follow the {status, message, data} envelope of the public API:
// "success" for 2xx, "fail" for caller faults, "error" for server faults.

func respondSuccess(c echo.Context, code int, message string, data any) error {
	body := echo.Map{"status": "success", "message": message}
	if data != nil {
		body["data"] = data
	}
	return c.JSON(code, body)
}

func respondError(c echo.Context, err error) error {
	code, msg := mapError(err)
	status := "fail"
	if code >= http.StatusInternalServerError {
		status = "error"
	}
	return c.JSON(code, echo.Map{"status": status, "message": msg})
}

// mapError translates the service taxonomy into transport codes. Storage
// faults deliberately surface as a generic 500 with no internal detail.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, "invalid request body"
	case errors.Is(err, service.ErrDuplicateUsername):
		return http.StatusBadRequest, "username already registered"
	case errors.Is(err, service.ErrDuplicateSetting):
		return http.StatusBadRequest, "setting already registered for this username"
	case errors.Is(err, service.ErrUsernameNotFound):
		return http.StatusNotFound, "username not found"
	case errors.Is(err, service.ErrInvalidPassword):
		return http.StatusUnauthorized, "wrong password"
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, service.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, "invalid refresh token"
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
