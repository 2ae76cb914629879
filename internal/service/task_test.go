package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakadenta/pomodoro-backend/internal/repo"
)

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	svc := &TaskService{Repo: newTestRepo(t)}
	ctx := context.Background()

	task, err := svc.Create(ctx, "alice", CreateTaskInput{
		Username:    "alice",
		TaskName:    "write report",
		TargetCycle: 4,
	})
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, 0, task.ActualCycle)
	assert.False(t, task.CompleteStatus)
	assert.False(t, task.ActiveStatus)
	assert.False(t, task.Timestamp.IsZero())

	// Declaring another owner is rejected before any write happens.
	_, err = svc.Create(ctx, "alice", CreateTaskInput{Username: "bob", TaskName: "x"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(ctx, "alice", CreateTaskInput{Username: "alice", TaskName: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTaskService_List(t *testing.T) {
	t.Parallel()

	svc := &TaskService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.List(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.List(ctx, "alice", "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Create(ctx, "alice", CreateTaskInput{Username: "alice", TaskName: "one", TargetCycle: 2})
	require.NoError(t, err)

	tasks, err := svc.List(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskService_UpdateAndDelete_Ownership(t *testing.T) {
	t.Parallel()

	svc := &TaskService{Repo: newTestRepo(t)}
	ctx := context.Background()

	task, err := svc.Create(ctx, "bob", CreateTaskInput{Username: "bob", TaskName: "bob task", TargetCycle: 1})
	require.NoError(t, err)

	upd := repo.TaskUpdate{TaskName: "renamed", TargetCycle: 1}

	assert.ErrorIs(t, svc.Update(ctx, "alice", task.ID, upd), ErrForbidden)
	assert.ErrorIs(t, svc.Update(ctx, "alice", 9999, upd), ErrNotFound)
	require.NoError(t, svc.Update(ctx, "bob", task.ID, upd))

	assert.ErrorIs(t, svc.Delete(ctx, "alice", task.ID), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, "bob", 9999), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "bob", task.ID))
}

func TestTaskService_SetActive(t *testing.T) {
	t.Parallel()

	svc := &TaskService{Repo: newTestRepo(t)}
	ctx := context.Background()

	task, err := svc.Create(ctx, "alice", CreateTaskInput{Username: "alice", TaskName: "focus me", TargetCycle: 2})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetActive(ctx, "alice", "bob", task.ID), ErrForbidden)
	assert.ErrorIs(t, svc.SetActive(ctx, "alice", "alice", 9999), ErrNotFound)
	require.NoError(t, svc.SetActive(ctx, "alice", "alice", task.ID))

	tasks, err := svc.List(ctx, "alice", "alice")
	require.NoError(t, err)
	assert.True(t, tasks[0].ActiveStatus)
}
