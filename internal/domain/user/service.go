package user

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/culture-compass/pkg/errors"
)

// Service stores and reads traveller preferences.
type Service interface {
	UpdatePreferences(ctx context.Context, userID int64, preferences []string) error
	Preferences(ctx context.Context, userID int64) (Preferences, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires up the user domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger.With("component", "user.service")}
}

func (s *service) UpdatePreferences(ctx context.Context, userID int64, preferences []string) error {
	if userID <= 0 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "user id must be positive", nil)
	}
	if preferences == nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "preferences array is required", nil)
	}
	clean := make([]string, 0, len(preferences))
	for _, pref := range preferences {
		if p := strings.TrimSpace(pref); p != "" {
			clean = append(clean, p)
		}
	}
	if _, err := s.repo.Upsert(ctx, userID, clean); err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "failed to update user preferences", err)
	}
	s.logger.Debug("user preferences updated", "user_id", userID, "count", len(clean))
	return nil
}

func (s *service) Preferences(ctx context.Context, userID int64) (Preferences, error) {
	if userID <= 0 {
		return Preferences{}, apperrors.Wrap(apperrors.CodeInvalidInput, "user id must be positive", nil)
	}
	prefs, ok, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Preferences{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load user preferences", err)
	}
	if !ok {
		return Preferences{}, apperrors.Wrap(apperrors.CodeNotFound, "user preferences not found", nil)
	}
	if prefs.Preferences == nil {
		prefs.Preferences = []string{}
	}
	return prefs, nil
}
