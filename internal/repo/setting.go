package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rakadenta/pomodoro-backend/internal/models"
)

func (r *GormRepo) CreateSetting(ctx context.Context, s *models.Setting) error {
	tx := r.DB.WithContext(ctx).Where("username = ?", s.Username).FirstOrCreate(s)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSettingExists
	}
	return nil
}

func (r *GormRepo) SettingByUsername(ctx context.Context, username string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &setting, nil
}

type SettingUpdate struct {
	Pomodoro  int
	Short     int
	Long      int
	Alarm     string
	Backsound string
}

func (r *GormRepo) UpdateSetting(ctx context.Context, username string, upd SettingUpdate) error {
	tx := r.DB.WithContext(ctx).Model(&models.Setting{}).
		Where("username = ?", username).
		Updates(map[string]any{
			"pomodoro":  upd.Pomodoro,
			"short":     upd.Short,
			"long":      upd.Long,
			"alarm":     upd.Alarm,
			"backsound": upd.Backsound,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrSettingNotFound
	}
	return nil
}
