package itinerary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/culture-compass/internal/domain/advisor"
	"github.com/yanqian/culture-compass/internal/infra/catalogdata"
	apperrors "github.com/yanqian/culture-compass/pkg/errors"
)

type fakeRepo struct {
	mu    sync.Mutex
	items map[int64]Itinerary
	seq   int64
	err   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[int64]Itinerary)}
}

func (r *fakeRepo) Create(_ context.Context, it Itinerary) (Itinerary, error) {
	if r.err != nil {
		return Itinerary{}, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	it.ID = r.seq
	r.items[it.ID] = it
	return it, nil
}

func (r *fakeRepo) Get(_ context.Context, id int64) (Itinerary, bool, error) {
	if r.err != nil {
		return Itinerary{}, false, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	return it, ok, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID int64) ([]Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Itinerary
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateItems(_ context.Context, id int64, items []Item) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return false, nil
	}
	it.Items = items
	r.items[id] = it
	return true, nil
}

type stubAdvisor struct {
	advisor.Service
	got []advisor.ItineraryItem
}

func (s *stubAdvisor) ItineraryDescription(_ context.Context, items []advisor.ItineraryItem) string {
	s.got = items
	return "A journey through temples and tea houses."
}

type captureRenderer struct {
	doc Document
	err error
}

func (r *captureRenderer) Render(doc Document) ([]byte, error) {
	r.doc = doc
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-fake"), nil
}

func (r *captureRenderer) ContentType() string { return "application/pdf" }

func (r *captureRenderer) Extension() string { return "pdf" }

func newTestService(t *testing.T, repo Repository, adv advisor.Service, renderer Renderer) Service {
	t.Helper()
	cat, err := catalogdata.Load("")
	require.NoError(t, err)
	return NewService(repo, adv, cat, renderer, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func kyotoItems() []Item {
	return []Item{
		{Type: ItemRestaurant, ItemID: 1, Day: 1, TimeOfDay: Evening},
		{ID: "fixed", Type: ItemCulturalSite, ItemID: 1, Day: 1, TimeOfDay: Morning, Duration: " 3 hours "},
		{Type: ItemDestination, ItemID: 1, Day: 2, TimeOfDay: Afternoon},
	}
}

func TestCreateAssignsDefaultsAndIDs(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), &stubAdvisor{}, &captureRenderer{})

	created, err := svc.Create(context.Background(), CreateRequest{Name: "  Kyoto weekend ", Items: kyotoItems()})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, DefaultUserID, created.UserID)
	require.Equal(t, "Kyoto weekend", created.Name)
	require.Len(t, created.Items, 3)
	require.NotEmpty(t, created.Items[0].ID)
	require.Equal(t, "fixed", created.Items[1].ID)
	require.Equal(t, "3 hours", created.Items[1].Duration)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), &stubAdvisor{}, &captureRenderer{})

	cases := []CreateRequest{
		{Name: "  "},
		{Name: "trip", Items: []Item{{Type: "museum", ItemID: 1, Day: 1, TimeOfDay: Morning}}},
		{Name: "trip", Items: []Item{{Type: ItemRestaurant, ItemID: 1, Day: 0, TimeOfDay: Morning}}},
		{Name: "trip", Items: []Item{{Type: ItemRestaurant, ItemID: 1, Day: 1, TimeOfDay: "night"}}},
		{Name: "trip", Items: []Item{{Type: ItemRestaurant, Day: 1, TimeOfDay: Morning}}},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)
		require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput), "request %+v", req)
	}

	_, err := svc.Create(context.Background(), CreateRequest{Name: "free day", Items: []Item{{Type: ItemActivity, Day: 1, TimeOfDay: Morning}}})
	require.NoError(t, err)
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(t, newFakeRepo(), &stubAdvisor{}, &captureRenderer{})

	_, err := svc.Get(context.Background(), 404)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestStorageErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("db down")
	svc := newTestService(t, repo, &stubAdvisor{}, &captureRenderer{})

	_, err := svc.Create(context.Background(), CreateRequest{Name: "trip"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
	_, err = svc.Get(context.Background(), 1)
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
}

func TestUpdateItems(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(t, repo, &stubAdvisor{}, &captureRenderer{})
	created, err := svc.Create(context.Background(), CreateRequest{Name: "trip"})
	require.NoError(t, err)

	err = svc.UpdateItems(context.Background(), created.ID, nil)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	err = svc.UpdateItems(context.Background(), 999, []Item{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	require.NoError(t, svc.UpdateItems(context.Background(), created.ID, kyotoItems()))
	updated, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, updated.Items, 3)
}

func TestDescribePassesItems(t *testing.T) {
	adv := &stubAdvisor{}
	svc := newTestService(t, newFakeRepo(), adv, &captureRenderer{})
	created, err := svc.Create(context.Background(), CreateRequest{Name: "trip", Items: kyotoItems()})
	require.NoError(t, err)

	description, err := svc.Describe(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "A journey through temples and tea houses.", description)
	require.Len(t, adv.got, 3)
	require.Equal(t, "restaurant", adv.got[0].Type)
	require.Equal(t, "evening", adv.got[0].TimeOfDay)

	_, err = svc.Describe(context.Background(), 77)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestExportGroupsDaysAndResolvesNames(t *testing.T) {
	renderer := &captureRenderer{}
	svc := newTestService(t, newFakeRepo(), &stubAdvisor{}, renderer)
	created, err := svc.Create(context.Background(), CreateRequest{Name: "Kyoto Weekend!", Items: kyotoItems()})
	require.NoError(t, err)

	export, err := svc.Export(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "kyoto-weekend-1.pdf", export.Filename)
	require.Equal(t, "application/pdf", export.ContentType)
	require.Equal(t, []byte("%PDF-fake"), export.Content)

	doc := renderer.doc
	require.Equal(t, "Kyoto Weekend!", doc.Title)
	require.Equal(t, "A journey through temples and tea houses.", doc.Description)
	require.Len(t, doc.Days, 2)
	require.Equal(t, 1, doc.Days[0].Day)
	require.Equal(t, []Entry{
		{TimeOfDay: Morning, Kind: ItemCulturalSite, Label: "Fushimi Inari Shrine", Duration: "3 hours"},
		{TimeOfDay: Evening, Kind: ItemRestaurant, Label: "Kikunoi (Japanese)"},
	}, doc.Days[0].Entries)
	require.Equal(t, "Kyoto, Japan", doc.Days[1].Entries[0].Label)
}

func TestExportRenderFailure(t *testing.T) {
	renderer := &captureRenderer{err: errors.New("font missing")}
	svc := newTestService(t, newFakeRepo(), &stubAdvisor{}, renderer)
	created, err := svc.Create(context.Background(), CreateRequest{Name: "trip"})
	require.NoError(t, err)

	_, err = svc.Export(context.Background(), created.ID)
	require.True(t, apperrors.IsCode(err, apperrors.CodeRender))
}
