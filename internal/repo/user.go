package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rakadenta/pomodoro-backend/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	tx := r.DB.WithContext(ctx).Where("username = ?", u.Username).FirstOrCreate(u)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserExists
	}
	return nil
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// SetRefreshToken unconditionally overwrites the stored refresh token.
// Concurrent sign-ins for the same username race here; last write wins and
// the superseded token stops matching on exchange.
func (r *GormRepo) SetRefreshToken(ctx context.Context, username, token string) error {
	tx := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Update("refresh_token", token)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
