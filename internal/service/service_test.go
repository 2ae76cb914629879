package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rakadenta/pomodoro-backend/internal/models"
	"github.com/rakadenta/pomodoro-backend/internal/repo"
	"github.com/rakadenta/pomodoro-backend/internal/tokens"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}, &models.Setting{}))

	return &repo.GormRepo{DB: db}
}

func newTestIssuer() *tokens.Issuer {
	return &tokens.Issuer{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	}
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Repo:       newTestRepo(t),
		Tokens:     newTestIssuer(),
		BcryptCost: bcrypt.MinCost,
	}
}
