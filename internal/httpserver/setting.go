package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rakadenta/pomodoro-backend/internal/logging"
	"github.com/rakadenta/pomodoro-backend/internal/middleware"
	"github.com/rakadenta/pomodoro-backend/internal/repo"
	"github.com/rakadenta/pomodoro-backend/internal/service"
)

type SettingHTTP struct {
	Svc *service.SettingService
}

func (h *SettingHTTP) CreateDefaults(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "setting_create")

	var req struct {
		Username  string `json:"username"`
		Pomodoro  int    `json:"pomodoro"`
		Short     int    `json:"short"`
		Long      int    `json:"long"`
		Alarm     string `json:"alarm"`
		Backsound string `json:"backsound"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("setting_create_bad_body", "error", err)
		return respondError(c, service.ErrValidation)
	}

	if err := h.Svc.CreateDefaults(ctx, service.SettingInput{
		Username:  req.Username,
		Pomodoro:  req.Pomodoro,
		Short:     req.Short,
		Long:      req.Long,
		Alarm:     req.Alarm,
		Backsound: req.Backsound,
	}); err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusCreated, "default setting created", echo.Map{
		"user_name": req.Username,
	})
}

func (h *SettingHTTP) GetByUsername(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.UsernameFromContext(c)

	setting, err := h.Svc.Get(ctx, identity, c.Param("username"))
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "setting retrieved", setting)
}

func (h *SettingHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "setting_update")
	identity := middleware.UsernameFromContext(c)

	var req struct {
		Pomodoro  int    `json:"pomodoro"`
		Short     int    `json:"short"`
		Long      int    `json:"long"`
		Alarm     string `json:"alarm"`
		Backsound string `json:"backsound"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("setting_update_bad_body", "error", err)
		return respondError(c, service.ErrValidation)
	}

	if err := h.Svc.Update(ctx, identity, c.Param("username"), repo.SettingUpdate{
		Pomodoro:  req.Pomodoro,
		Short:     req.Short,
		Long:      req.Long,
		Alarm:     req.Alarm,
		Backsound: req.Backsound,
	}); err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "setting updated", nil)
}
