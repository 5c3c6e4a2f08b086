package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
	"github.com/yanqian/culture-compass/internal/domain/catalog"
	apperrors "github.com/yanqian/culture-compass/pkg/errors"
	"github.com/yanqian/culture-compass/pkg/util"
)

// DefaultUserID owns itineraries created without a user.
const DefaultUserID int64 = 1

// Service manages stored itineraries.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Itinerary, error)
	Get(ctx context.Context, id int64) (Itinerary, error)
	ListByUser(ctx context.Context, userID int64) ([]Itinerary, error)
	UpdateItems(ctx context.Context, id int64, items []Item) error
	Describe(ctx context.Context, id int64) (string, error)
	Export(ctx context.Context, id int64) (Export, error)
}

type service struct {
	repo     Repository
	advisor  advisor.Service
	catalog  catalog.Catalog
	renderer Renderer
	logger   *slog.Logger
}

// NewService wires up the itinerary domain.
func NewService(repo Repository, adv advisor.Service, cat catalog.Catalog, renderer Renderer, logger *slog.Logger) Service {
	return &service{
		repo:     repo,
		advisor:  adv,
		catalog:  cat,
		renderer: renderer,
		logger:   logger.With("component", "itinerary.service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (Itinerary, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Itinerary{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid itinerary data", fmt.Errorf("name is required"))
	}
	if err := validateItems(req.Items); err != nil {
		return Itinerary{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid itinerary data", err)
	}
	userID := req.UserID
	if userID <= 0 {
		userID = DefaultUserID
	}

	created, err := s.repo.Create(ctx, Itinerary{
		UserID: userID,
		Name:   name,
		Items:  normalizeItems(req.Items),
	})
	if err != nil {
		return Itinerary{}, apperrors.Wrap(apperrors.CodeStorage, "failed to create itinerary", err)
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id int64) (Itinerary, error) {
	found, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return Itinerary{}, apperrors.Wrap(apperrors.CodeStorage, "failed to fetch itinerary", err)
	}
	if !ok {
		return Itinerary{}, apperrors.Wrap(apperrors.CodeNotFound, "itinerary not found", nil)
	}
	if found.Items == nil {
		found.Items = []Item{}
	}
	return found, nil
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]Itinerary, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to list itineraries", err)
	}
	if items == nil {
		items = []Itinerary{}
	}
	return items, nil
}

func (s *service) UpdateItems(ctx context.Context, id int64, items []Item) error {
	if items == nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "items array is required", nil)
	}
	if err := validateItems(items); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "invalid itinerary items", err)
	}
	ok, err := s.repo.UpdateItems(ctx, id, normalizeItems(items))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "failed to update itinerary", err)
	}
	if !ok {
		return apperrors.Wrap(apperrors.CodeNotFound, "itinerary not found", nil)
	}
	return nil
}

func (s *service) Describe(ctx context.Context, id int64) (string, error) {
	found, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.advisor.ItineraryDescription(ctx, toAdvisorItems(found.Items)), nil
}

func (s *service) Export(ctx context.Context, id int64) (Export, error) {
	found, err := s.Get(ctx, id)
	if err != nil {
		return Export{}, err
	}
	description := s.advisor.ItineraryDescription(ctx, toAdvisorItems(found.Items))
	content, err := s.renderer.Render(Document{
		Title:       found.Name,
		Description: description,
		Days:        s.planDays(found.Items),
	})
	if err != nil {
		return Export{}, apperrors.Wrap(apperrors.CodeRender, "failed to render itinerary", err)
	}
	return Export{
		Filename:    exportFilename(found, s.renderer.Extension()),
		ContentType: s.renderer.ContentType(),
		Content:     content,
	}, nil
}

func (s *service) planDays(items []Item) []DayPlan {
	sorted := append([]Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day < sorted[j].Day
		}
		return slotRank(sorted[i].TimeOfDay) < slotRank(sorted[j].TimeOfDay)
	})

	days := make([]DayPlan, 0)
	for _, item := range sorted {
		if len(days) == 0 || days[len(days)-1].Day != item.Day {
			days = append(days, DayPlan{Day: item.Day})
		}
		current := &days[len(days)-1]
		current.Entries = append(current.Entries, Entry{
			TimeOfDay: item.TimeOfDay,
			Kind:      item.Type,
			Label:     s.resolveLabel(item),
			Duration:  item.Duration,
		})
	}
	return days
}

func (s *service) resolveLabel(item Item) string {
	switch item.Type {
	case ItemDestination:
		if dest, ok := s.catalog.Destination(item.ItemID); ok {
			return dest.Name + ", " + dest.Country
		}
	case ItemCulturalSite:
		if site, ok := s.catalog.Site(item.ItemID); ok {
			return site.Name
		}
	case ItemRestaurant:
		if r, ok := s.catalog.Restaurant(item.ItemID); ok {
			return r.Name + " (" + r.Cuisine + ")"
		}
	}
	if item.ItemID > 0 {
		return fmt.Sprintf("%s #%d", item.Type, item.ItemID)
	}
	return string(item.Type)
}

func toAdvisorItems(items []Item) []advisor.ItineraryItem {
	out := make([]advisor.ItineraryItem, 0, len(items))
	for _, item := range items {
		out = append(out, advisor.ItineraryItem{
			ID:        item.ID,
			Type:      string(item.Type),
			ItemID:    item.ItemID,
			Day:       item.Day,
			TimeOfDay: string(item.TimeOfDay),
			Duration:  item.Duration,
		})
	}
	return out
}

func exportFilename(it Itinerary, ext string) string {
	return fmt.Sprintf("%s-%d.%s", util.Slugify(it.Name, "itinerary"), it.ID, ext)
}
