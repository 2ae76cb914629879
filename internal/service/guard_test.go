package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakadenta/pomodoro-backend/internal/models"
)

func TestAuthorizeUsername(t *testing.T) {
	t.Parallel()

	assert.NoError(t, AuthorizeUsername("alice", "alice"))
	assert.ErrorIs(t, AuthorizeUsername("alice", "bob"), ErrForbidden)
}

func TestAuthorizeTaskOwner_NotFoundBeforeForbidden(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	task := models.Task{Username: "bob", TaskName: "bob task", Timestamp: time.Now()}
	require.NoError(t, r.CreateTask(ctx, &task))

	// Foreign but existing id: forbidden.
	err := AuthorizeTaskOwner(ctx, r, "alice", task.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// Missing id: not-found, regardless of whose identity asks.
	err = AuthorizeTaskOwner(ctx, r, "alice", 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	err = AuthorizeTaskOwner(ctx, r, "bob", 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	// Owner passes.
	assert.NoError(t, AuthorizeTaskOwner(ctx, r, "bob", task.ID))
}
