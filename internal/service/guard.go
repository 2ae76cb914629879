package service

import (
	"context"
	"errors"

	"github.com/rakadenta/pomodoro-backend/internal/repo"
)

// AuthorizeUsername checks that the authenticated identity matches the
// username a request claims to act for.
func AuthorizeUsername(identity, claimed string) error {
	if identity != claimed {
		return ErrForbidden
	}
	return nil
}

// AuthorizeTaskOwner resolves the task's recorded owner and compares it to
// the identity. Existence is checked before ownership: probing a missing id
// yields not-found no matter whose token is presented, while a foreign id
// yields forbidden only once it is known to exist.
func AuthorizeTaskOwner(ctx context.Context, r *repo.GormRepo, identity string, id uint) error {
	owner, err := r.TaskOwner(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrTaskNotFound) {
			return ErrNotFound
		}
		return err
	}
	return AuthorizeUsername(identity, owner)
}
