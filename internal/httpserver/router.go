package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rakadenta/pomodoro-backend/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	TaskHandler    *TaskHTTP
	SettingHandler *SettingHTTP
	AccessSecret   []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/signup", d.AuthHandler.Signup)
	e.POST("/signin", d.AuthHandler.Signin)
	e.POST("/refresh-token", d.AuthHandler.RefreshToken)
	// Open: the frontend seeds defaults right after sign-up, before the
	// user holds any token.
	e.POST("/setting", d.SettingHandler.CreateDefaults)

	authMw := middleware.NewBearerAuth(d.AccessSecret)

	private := e.Group("")
	private.Use(authMw.RequireAuth)

	private.POST("/task", d.TaskHandler.Create)
	private.GET("/tasks/:username", d.TaskHandler.ListByUsername)
	private.GET("/setting/:username", d.SettingHandler.GetByUsername)
	private.PUT("/task/:id", d.TaskHandler.Update)
	private.PUT("/activetask/:id", d.TaskHandler.SetActive)
	private.PUT("/setting/:username", d.SettingHandler.Update)
	private.DELETE("/task/:id", d.TaskHandler.Delete)
}
