package service

import (
	"context"
	"errors"
	"time"

	"github.com/rakadenta/pomodoro-backend/internal/events"
	"github.com/rakadenta/pomodoro-backend/internal/logging"
	"github.com/rakadenta/pomodoro-backend/internal/models"
	"github.com/rakadenta/pomodoro-backend/internal/repo"
)

type TaskService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

type CreateTaskInput struct {
	Username    string
	TaskName    string
	TargetCycle int
}

func (s *TaskService) Create(ctx context.Context, identity string, in CreateTaskInput) (*models.Task, error) {
	l := logging.FromContext(ctx).With("svc", "task.create")

	if in.Username == "" || in.TaskName == "" {
		return nil, ErrValidation
	}
	if err := AuthorizeUsername(identity, in.Username); err != nil {
		l.Warn("task_create_forbidden", "identity", identity, "claimed", in.Username)
		return nil, err
	}

	task := models.Task{
		Username:       in.Username,
		TaskName:       in.TaskName,
		ActualCycle:    0,
		TargetCycle:    in.TargetCycle,
		CompleteStatus: false,
		ActiveStatus:   false,
		Timestamp:      time.Now(),
	}
	if err := s.Repo.CreateTask(ctx, &task); err != nil {
		l.Error("task_create_failed", "error", err)
		return nil, err
	}

	s.Producer.Publish(ctx, "task_created", in.Username, map[string]any{"task_id": task.ID})
	l.Info("task_created", "task_id", task.ID, "username", in.Username)
	return &task, nil
}

func (s *TaskService) List(ctx context.Context, identity, username string) ([]models.Task, error) {
	if err := AuthorizeUsername(identity, username); err != nil {
		return nil, err
	}

	tasks, err := s.Repo.TasksByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	// An empty task list reads as not-found; clients rely on the 404.
	if len(tasks) == 0 {
		return nil, ErrNotFound
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, identity string, id uint, upd repo.TaskUpdate) error {
	l := logging.FromContext(ctx).With("svc", "task.update", "task_id", id)

	if upd.TaskName == "" {
		return ErrValidation
	}
	if err := AuthorizeTaskOwner(ctx, s.Repo, identity, id); err != nil {
		return err
	}

	if err := s.Repo.UpdateTask(ctx, id, upd); err != nil {
		if errors.Is(err, repo.ErrTaskNotFound) {
			return ErrNotFound
		}
		l.Error("task_update_failed", "error", err)
		return err
	}

	if upd.CompleteStatus {
		s.Producer.Publish(ctx, "task_completed", identity, map[string]any{"task_id": id})
	}
	return nil
}

// SetActive makes the given task the user's single focused task.
func (s *TaskService) SetActive(ctx context.Context, identity, username string, id uint) error {
	l := logging.FromContext(ctx).With("svc", "task.set_active", "task_id", id)

	if username == "" {
		return ErrValidation
	}
	if err := AuthorizeUsername(identity, username); err != nil {
		return err
	}

	if err := s.Repo.SetActiveTask(ctx, username, id); err != nil {
		if errors.Is(err, repo.ErrTaskNotFound) {
			return ErrNotFound
		}
		l.Error("task_set_active_failed", "error", err)
		return err
	}
	return nil
}

func (s *TaskService) Delete(ctx context.Context, identity string, id uint) error {
	l := logging.FromContext(ctx).With("svc", "task.delete", "task_id", id)

	if err := AuthorizeTaskOwner(ctx, s.Repo, identity, id); err != nil {
		return err
	}

	if err := s.Repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repo.ErrTaskNotFound) {
			return ErrNotFound
		}
		l.Error("task_delete_failed", "error", err)
		return err
	}
	return nil
}
