package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rakadenta/pomodoro-backend/internal/models"
)

func (r *GormRepo) CreateTask(ctx context.Context, t *models.Task) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *GormRepo) TasksByUsername(ctx context.Context, username string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.DB.WithContext(ctx).Where("username = ?", username).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// TaskOwner resolves the recorded owner of a task id. The existence check
// stays separate from any ownership comparison so callers can report
// not-found before forbidden.
func (r *GormRepo) TaskOwner(ctx context.Context, id uint) (string, error) {
	var task models.Task
	if err := r.DB.WithContext(ctx).Select("username").Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrTaskNotFound
		}
		return "", err
	}
	return task.Username, nil
}

type TaskUpdate struct {
	TaskName       string
	ActualCycle    int
	TargetCycle    int
	CompleteStatus bool
}

func (r *GormRepo) UpdateTask(ctx context.Context, id uint, upd TaskUpdate) error {
	tx := r.DB.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"task_name":       upd.TaskName,
			"actual_cycle":    upd.ActualCycle,
			"target_cycle":    upd.TargetCycle,
			"complete_status": upd.CompleteStatus,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// SetActiveTask deactivates every task of the user and activates the given
// id in one transaction. Either both writes commit or neither does, so the
// user never ends up with zero active tasks because the second write failed.
func (r *GormRepo) SetActiveTask(ctx context.Context, username string, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("username = ?", username).
			Update("active_status", false).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Task{}).
			Where("id = ?", id).
			Update("active_status", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

func (r *GormRepo) DeleteTask(ctx context.Context, id uint) error {
	tx := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
