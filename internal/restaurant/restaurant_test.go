package restaurant

import (
	"context"
	"errors"
	"testing"

	"foodielink/internal/matching"
	"foodielink/internal/places"
	"foodielink/internal/preferences"
)

// --------------------------------------------------
// Stubs
// --------------------------------------------------

type stubProvider struct {
	detailsCalls int
	searchCalls  int
	place        *places.Place
	err          error
}

func (s *stubProvider) Details(ctx context.Context, placeID string) (*places.Place, error) {
	s.detailsCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.place, nil
}

func (s *stubProvider) Search(ctx context.Context, query string) (*places.Place, error) {
	s.searchCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.place, nil
}

type stubPrefs struct {
	profile *preferences.Profile
}

func (s *stubPrefs) Get(ctx context.Context, userID string) (*preferences.Profile, error) {
	if s.profile == nil {
		return nil, preferences.ErrNotFound
	}
	return s.profile, nil
}

func testProfile() *preferences.Profile {
	return &preferences.Profile{
		CuisinePreferences:    []string{"Italian"},
		DietaryRestrictions:   preferences.RestrictionList{Unrestricted: true},
		FoodsToAvoid:          preferences.RestrictionList{Unrestricted: true},
		FavoriteProteins:      preferences.RestrictionList{Unrestricted: true},
		AtmospherePreferences: []string{"Casual Dining"},
		PriceRange:            preferences.PriceModerate,
		SpiceLevel:            3,
	}
}

func testPlace() *places.Place {
	return &places.Place{
		PlaceID: "place-1",
		Address: "12 Via Roma",
		Features: matching.Features{
			Name:         "Trattoria Prova",
			CuisineTypes: []string{"italian_restaurant"},
			PriceLevel:   2,
			Rating:       4.6,
			ReviewCount:  210,
			DineIn:       true,
		},
	}
}

// --------------------------------------------------
// Import
// --------------------------------------------------

func TestImportFromPlaceIDLink(t *testing.T) {
	repo := NewMemoryRepository()
	provider := &stubProvider{place: testPlace()}
	service := NewService(repo, provider, &stubPrefs{profile: testProfile()})

	view, err := service.Import(
		context.Background(),
		"user-1",
		"https://www.google.com/maps/search/?api=1&query=trattoria&query_place_id=place-1",
		"",
	)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if provider.detailsCalls != 1 || provider.searchCalls != 0 {
		t.Errorf("expected one Details call, got details=%d search=%d",
			provider.detailsCalls, provider.searchCalls)
	}
	if view.Restaurant.ID == "" {
		t.Error("expected generated restaurant id")
	}
	if view.Restaurant.PlaceID != "place-1" {
		t.Errorf("place id = %q", view.Restaurant.PlaceID)
	}
	if view.OverallScore <= 0 {
		t.Errorf("expected positive overall score, got %d", view.OverallScore)
	}
	if view.Verdict == "" {
		t.Error("expected a verdict")
	}
	if len(view.Reasons) < 2 {
		t.Errorf("expected at least 2 reasons, got %d", len(view.Reasons))
	}
}

func TestImportFallsBackToSearch(t *testing.T) {
	repo := NewMemoryRepository()
	provider := &stubProvider{place: testPlace()}
	service := NewService(repo, provider, &stubPrefs{profile: testProfile()})

	_, err := service.Import(context.Background(), "user-1", "", "trattoria prova rome")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if provider.searchCalls != 1 {
		t.Errorf("expected one Search call, got %d", provider.searchCalls)
	}
}

func TestImportRequiresProfile(t *testing.T) {
	service := NewService(NewMemoryRepository(), &stubProvider{}, &stubPrefs{})

	_, err := service.Import(context.Background(), "user-1", "", "anything")
	if err != ErrProfileRequired {
		t.Fatalf("expected ErrProfileRequired, got %v", err)
	}
}

func TestImportRejectsForeignLink(t *testing.T) {
	service := NewService(NewMemoryRepository(), &stubProvider{}, &stubPrefs{profile: testProfile()})

	_, err := service.Import(context.Background(), "user-1", "https://example.com/maps", "")
	if err == nil {
		t.Fatal("expected error for non-Google link")
	}
}

func TestImportIsIdempotentPerPlace(t *testing.T) {
	repo := NewMemoryRepository()
	provider := &stubProvider{place: testPlace()}
	service := NewService(repo, provider, &stubPrefs{profile: testProfile()})

	first, err := service.Import(context.Background(), "user-1", "", "trattoria")
	if err != nil {
		t.Fatalf("first import: %v", err)
	}
	second, err := service.Import(context.Background(), "user-1", "", "trattoria")
	if err != nil {
		t.Fatalf("second import: %v", err)
	}

	if first.Restaurant.ID != second.Restaurant.ID {
		t.Errorf("re-import created a new row: %q vs %q",
			first.Restaurant.ID, second.Restaurant.ID)
	}

	saved, err := service.ListSaved(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListSaved: %v", err)
	}
	if len(saved) != 1 {
		t.Errorf("expected 1 saved restaurant, got %d", len(saved))
	}
}

func TestImportProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("places api down")}
	service := NewService(NewMemoryRepository(), provider, &stubPrefs{profile: testProfile()})

	_, err := service.Import(context.Background(), "user-1", "", "trattoria")
	if err == nil {
		t.Fatal("expected provider error to surface")
	}
}

// --------------------------------------------------
// Match
// --------------------------------------------------

func TestMatchIsScopedToOwner(t *testing.T) {
	repo := NewMemoryRepository()
	provider := &stubProvider{place: testPlace()}
	service := NewService(repo, provider, &stubPrefs{profile: testProfile()})

	view, err := service.Import(context.Background(), "user-1", "", "trattoria")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if _, err := service.Match(context.Background(), view.Restaurant.ID, "user-2"); err == nil {
		t.Error("expected not-found for another user's restaurant")
	}

	got, err := service.Match(context.Background(), view.Restaurant.ID, "user-1")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got.Restaurant.PlaceID != "place-1" {
		t.Errorf("place id = %q", got.Restaurant.PlaceID)
	}
}
