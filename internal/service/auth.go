package service

import (
	"context"
	"errors"
	"time"

	"github.com/rakadenta/pomodoro-backend/internal/events"
	"github.com/rakadenta/pomodoro-backend/internal/hash"
	"github.com/rakadenta/pomodoro-backend/internal/logging"
	"github.com/rakadenta/pomodoro-backend/internal/models"
	"github.com/rakadenta/pomodoro-backend/internal/repo"
	"github.com/rakadenta/pomodoro-backend/internal/tokens"
)

type AuthService struct {
	Repo       *repo.GormRepo
	Tokens     *tokens.Issuer
	BcryptCost int
	Producer   *events.Producer
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if username == "" || password == "" {
		return ErrValidation
	}

	pwHash, err := hash.HashPassword(password, s.BcryptCost)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash password", "error", err)
		return err
	}

	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserExists) {
			l.Warn("register_conflict", "username", username)
			return ErrDuplicateUsername
		}
		l.Error("register_failed", "error", err)
		return err
	}

	s.Producer.Publish(ctx, "user_registered", username, nil)
	l.Info("user_registered", "username", username)
	return nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("login_failed", "reason", "unknown username")
			return nil, ErrUsernameNotFound
		}
		l.Error("login_failed", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password")
		return nil, ErrInvalidPassword
	}

	accessToken, accessExp, err := s.Tokens.IssueAccess(username)
	if err != nil {
		l.Error("login_failed", "reason", "cannot issue access token", "error", err)
		return nil, err
	}

	refreshToken, refreshExp, err := s.Tokens.IssueRefresh(username)
	if err != nil {
		l.Error("login_failed", "reason", "cannot issue refresh token", "error", err)
		return nil, err
	}

	// Overwriting supersedes any previously stored refresh token; access
	// tokens already minted from it stay valid until their own expiry.
	if err := s.Repo.SetRefreshToken(ctx, username, refreshToken); err != nil {
		l.Error("login_failed", "reason", "cannot store refresh token", "error", err)
		return nil, err
	}

	s.Producer.Publish(ctx, "user_signed_in", username, nil)
	l.Info("login_successful")

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated: the stored value stays valid until
// its own expiry or until a new sign-in replaces it.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	claims, err := tokens.ParseRefresh(refreshToken, s.Tokens.RefreshSecret)
	if err != nil {
		l.Warn("refresh_failed", "reason", "token did not verify")
		return "", time.Time{}, ErrInvalidRefreshToken
	}

	user, err := s.Repo.GetUserByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			l.Warn("refresh_failed", "reason", "unknown subject")
			return "", time.Time{}, ErrInvalidRefreshToken
		}
		l.Error("refresh_failed", "error", err)
		return "", time.Time{}, err
	}

	// Exact match against the stored value; a superseded token verifies
	// cryptographically but must still be rejected.
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		l.Warn("refresh_failed", "reason", "token does not match stored value")
		return "", time.Time{}, ErrInvalidRefreshToken
	}

	accessToken, accessExp, err := s.Tokens.IssueAccess(claims.Username)
	if err != nil {
		l.Error("refresh_failed", "reason", "cannot issue access token", "error", err)
		return "", time.Time{}, err
	}

	l.Info("refresh_successful", "username", claims.Username)
	return accessToken, accessExp, nil
}
