package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rakadenta/pomodoro-backend/internal/logging"
	"github.com/rakadenta/pomodoro-backend/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "signup")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_bad_body", "error", err)
		return respondError(c, service.ErrValidation)
	}

	if err := h.Svc.Register(ctx, req.Username, req.Password); err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusCreated, "user registered", echo.Map{
		"user_name": req.Username,
	})
}

func (h *AuthHTTP) Signin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "signin")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("signin_bad_body", "error", err)
		return respondError(c, service.ErrValidation)
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "authentication successful", echo.Map{
		"user_name":     req.Username,
		"access_token":  res.AccessToken,
		"refresh_token": res.RefreshToken,
	})
}

func (h *AuthHTTP) RefreshToken(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "refresh_token")

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		l.Warn("refresh_bad_body")
		return respondError(c, service.ErrInvalidRefreshToken)
	}

	accessToken, _, err := h.Svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "token refreshed", echo.Map{
		"token": accessToken,
	})
}
