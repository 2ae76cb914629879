package repo

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rakadenta/pomodoro-backend/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}, &models.Setting{}))

	return &GormRepo{DB: db}
}
