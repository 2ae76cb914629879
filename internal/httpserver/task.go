package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rakadenta/pomodoro-backend/internal/logging"
	"github.com/rakadenta/pomodoro-backend/internal/middleware"
	"github.com/rakadenta/pomodoro-backend/internal/repo"
	"github.com/rakadenta/pomodoro-backend/internal/service"
)

type TaskHTTP struct {
	Svc *service.TaskService
}

func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, service.ErrValidation
	}
	return uint(id), nil
}

func (h *TaskHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_create")
	identity := middleware.UsernameFromContext(c)

	var req struct {
		Username    string `json:"username"`
		TaskName    string `json:"task_name"`
		TargetCycle int    `json:"target_cycle"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("task_create_bad_body", "error", err)
		return respondError(c, service.ErrValidation)
	}

	task, err := h.Svc.Create(ctx, identity, service.CreateTaskInput{
		Username:    req.Username,
		TaskName:    req.TaskName,
		TargetCycle: req.TargetCycle,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusCreated, "task created", echo.Map{
		"task_id":   task.ID,
		"user_name": task.Username,
		"task_name": task.TaskName,
		"timestamp": task.Timestamp,
	})
}

func (h *TaskHTTP) ListByUsername(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.UsernameFromContext(c)

	tasks, err := h.Svc.List(ctx, identity, c.Param("username"))
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "tasks retrieved", tasks)
}

func (h *TaskHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_update")
	identity := middleware.UsernameFromContext(c)

	id, err := taskID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		TaskName       string `json:"task_name"`
		ActualCycle    int    `json:"actual_cycle"`
		TargetCycle    int    `json:"target_cycle"`
		CompleteStatus bool   `json:"complete_status"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("task_update_bad_body", "error", err)
		return respondError(c, service.ErrValidation)
	}

	if err := h.Svc.Update(ctx, identity, id, repo.TaskUpdate{
		TaskName:       req.TaskName,
		ActualCycle:    req.ActualCycle,
		TargetCycle:    req.TargetCycle,
		CompleteStatus: req.CompleteStatus,
	}); err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "task updated", nil)
}

func (h *TaskHTTP) SetActive(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "task_set_active")
	identity := middleware.UsernameFromContext(c)

	id, err := taskID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req struct {
		Username string `json:"username"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("task_set_active_bad_body", "error", err)
		return respondError(c, service.ErrValidation)
	}

	if err := h.Svc.SetActive(ctx, identity, req.Username, id); err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "task activated, other tasks deactivated", nil)
}

func (h *TaskHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	identity := middleware.UsernameFromContext(c)

	id, err := taskID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Svc.Delete(ctx, identity, id); err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "task deleted", nil)
}
