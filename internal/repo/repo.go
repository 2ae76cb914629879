package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrSettingExists   = errors.New("setting already exists")
	ErrSettingNotFound = errors.New("setting not found")
)

type GormRepo struct {
	DB *gorm.DB
}
