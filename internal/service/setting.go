package service

import (
	"context"
	"errors"

	"github.com/rakadenta/pomodoro-backend/internal/logging"
	"github.com/rakadenta/pomodoro-backend/internal/models"
	"github.com/rakadenta/pomodoro-backend/internal/repo"
)

type SettingService struct {
	Repo *repo.GormRepo
}

type SettingInput struct {
	Username  string
	Pomodoro  int
	Short     int
	Long      int
	Alarm     string
	Backsound string
}

// CreateDefaults stores the initial timer settings for a freshly signed-up
// user. The endpoint is open: the frontend calls it right after sign-up,
// before the user has any token.
func (s *SettingService) CreateDefaults(ctx context.Context, in SettingInput) error {
	l := logging.FromContext(ctx).With("svc", "setting.create")

	if in.Username == "" {
		return ErrValidation
	}

	setting := models.Setting{
		Username:  in.Username,
		Pomodoro:  in.Pomodoro,
		Short:     in.Short,
		Long:      in.Long,
		Alarm:     in.Alarm,
		Backsound: in.Backsound,
	}
	if err := s.Repo.CreateSetting(ctx, &setting); err != nil {
		if errors.Is(err, repo.ErrSettingExists) {
			l.Warn("setting_conflict", "username", in.Username)
			return ErrDuplicateSetting
		}
		l.Error("setting_create_failed", "error", err)
		return err
	}
	return nil
}

func (s *SettingService) Get(ctx context.Context, identity, username string) (*models.Setting, error) {
	if err := AuthorizeUsername(identity, username); err != nil {
		return nil, err
	}

	setting, err := s.Repo.SettingByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrSettingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) Update(ctx context.Context, identity, username string, upd repo.SettingUpdate) error {
	l := logging.FromContext(ctx).With("svc", "setting.update", "username", username)

	if err := AuthorizeUsername(identity, username); err != nil {
		return err
	}

	if err := s.Repo.UpdateSetting(ctx, username, upd); err != nil {
		if errors.Is(err, repo.ErrSettingNotFound) {
			return ErrNotFound
		}
		l.Error("setting_update_failed", "error", err)
		return err
	}
	return nil
}
