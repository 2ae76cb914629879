package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakadenta/pomodoro-backend/internal/models"
)

func TestCreateSetting_Duplicate(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	first := models.Setting{Username: "alice", Pomodoro: 25, Short: 5, Long: 15}
	require.NoError(t, r.CreateSetting(ctx, &first))

	second := models.Setting{Username: "alice", Pomodoro: 30}
	err := r.CreateSetting(ctx, &second)
	assert.ErrorIs(t, err, ErrSettingExists)

	stored, err := r.SettingByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Pomodoro)
}

func TestUpdateSetting(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateSetting(ctx, &models.Setting{Username: "alice", Pomodoro: 25, Short: 5, Long: 15}))

	err := r.UpdateSetting(ctx, "alice", SettingUpdate{
		Pomodoro: 50, Short: 10, Long: 20, Alarm: "bell.mp3", Backsound: "rain.mp3",
	})
	require.NoError(t, err)

	stored, err := r.SettingByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Pomodoro)
	assert.Equal(t, "bell.mp3", stored.Alarm)

	err = r.UpdateSetting(ctx, "nobody", SettingUpdate{Pomodoro: 1})
	assert.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSettingByUsername_NotFound(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)

	_, err := r.SettingByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
