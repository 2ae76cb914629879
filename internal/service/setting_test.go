package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakadenta/pomodoro-backend/internal/repo"
)

func TestSettingService_CreateDefaults(t *testing.T) {
	t.Parallel()

	svc := &SettingService{Repo: newTestRepo(t)}
	ctx := context.Background()

	in := SettingInput{Username: "alice", Pomodoro: 25, Short: 5, Long: 15, Alarm: "alarm.mp3", Backsound: "backsound.mp3"}
	require.NoError(t, svc.CreateDefaults(ctx, in))

	err := svc.CreateDefaults(ctx, in)
	assert.ErrorIs(t, err, ErrDuplicateSetting)

	err = svc.CreateDefaults(ctx, SettingInput{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSettingService_GetAndUpdate_Ownership(t *testing.T) {
	t.Parallel()

	svc := &SettingService{Repo: newTestRepo(t)}
	ctx := context.Background()

	require.NoError(t, svc.CreateDefaults(ctx, SettingInput{Username: "alice", Pomodoro: 25, Short: 5, Long: 15}))

	_, err := svc.Get(ctx, "bob", "alice")
	assert.ErrorIs(t, err, ErrForbidden)

	setting, err := svc.Get(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, 25, setting.Pomodoro)

	_, err = svc.Get(ctx, "ghost", "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	upd := repo.SettingUpdate{Pomodoro: 50, Short: 10, Long: 20}
	assert.ErrorIs(t, svc.Update(ctx, "bob", "alice", upd), ErrForbidden)
	require.NoError(t, svc.Update(ctx, "alice", "alice", upd))

	setting, err = svc.Get(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.Equal(t, 50, setting.Pomodoro)
}
