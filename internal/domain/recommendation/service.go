package recommendation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/culture-compass/internal/domain/catalog"
	apperrors "github.com/yanqian/culture-compass/pkg/errors"
)

// Service matches traveller preferences against the catalog.
type Service interface {
	Recommend(ctx context.Context, req Request) (Result, error)
	Trending(ctx context.Context) ([]TrendingPreference, error)
	Profile(preferences []string) Profile
}

type service struct {
	cfg     Config
	catalog catalog.Catalog
	trends  TrendStore
	logger  *slog.Logger
}

// NewService wires up the recommendation domain.
func NewService(cfg Config, cat catalog.Catalog, trends TrendStore, logger *slog.Logger) Service {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultLimit
	}
	if cfg.TrendingSize <= 0 {
		cfg.TrendingSize = 10
	}
	return &service{
		cfg:     cfg,
		catalog: cat,
		trends:  trends,
		logger:  logger.With("component", "recommendation.service"),
	}
}

func (s *service) Recommend(ctx context.Context, req Request) (Result, error) {
	if req.Preferences == nil {
		return Result{}, apperrors.Wrap(apperrors.CodeInvalidInput, "preferences array is required", nil)
	}
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	result := Result{
		Destinations:  Match(s.catalog.Destinations(), req.Preferences, limit),
		CulturalSites: Match(s.catalog.Sites(), req.Preferences, limit),
		Restaurants:   Match(s.catalog.Restaurants(), req.Preferences, limit),
	}

	s.recordTrends(ctx, req.Preferences)
	return result, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingPreference, error) {
	if s.trends == nil {
		return []TrendingPreference{}, nil
	}
	items, err := s.trends.Top(ctx, s.cfg.TrendingSize)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to load trending preferences", err)
	}
	if items == nil {
		items = []TrendingPreference{}
	}
	return items, nil
}

func (s *service) Profile(preferences []string) Profile {
	return AnalyzePreferences(preferences)
}

func (s *service) recordTrends(ctx context.Context, preferences []string) {
	if s.trends == nil {
		return
	}
	seen := make(map[string]struct{}, len(preferences))
	for _, pref := range preferences {
		display := strings.TrimSpace(pref)
		canonical := strings.ToLower(display)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		if err := s.trends.Increment(ctx, canonical, display); err != nil {
			s.logger.Warn("preference trend increment failed", "preference", canonical, "error", err)
		}
	}
}
