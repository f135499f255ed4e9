package menu

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"foodielink/internal/matching"
	"foodielink/internal/preferences"
	"foodielink/internal/restaurant"
)

// --------------------------------------------------
// Stubs
// --------------------------------------------------

type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) ExtractMenu(ctx context.Context, menuText string) (string, error) {
	return s.response, s.err
}

type inMemoryStorage struct {
	lastKey string
}

func (s *inMemoryStorage) Upload(
	ctx context.Context,
	key string,
	file multipart.File,
	contentType string,
) (string, error) {
	s.lastKey = key
	return "https://cdn.example.com/" + key, nil
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
		CuisinePreferences:  []string{"Italian"},
		DietaryRestrictions: preferences.RestrictionList{Values: []string{"Vegetarian"}},
		FoodsToAvoid:        preferences.RestrictionList{Unrestricted: true},
		FavoriteProteins:    preferences.RestrictionList{Unrestricted: true},
		PriceRange:          preferences.PriceModerate,
		SpiceLevel:          3,
	}
}

// --------------------------------------------------
// Analyze
// --------------------------------------------------

func TestAnalyzeRanksAndFlagsItems(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil, nil, &stubPrefs{profile: testProfile()}, nil)

	report, err := service.Analyze(context.Background(), "user-1", []ItemInput{
		{ID: "pasta", Name: "Margherita Pizza", Description: "Italian classic with basil"},
		{ID: "steak", Name: "Ribeye Steak", Description: "Grilled beef"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if report.Analysis.TopMatchID != "pasta" {
		t.Errorf("top match = %q, want pasta", report.Analysis.TopMatchID)
	}

	steak := report.Analysis.DetailsByID["steak"]
	if steak.MatchType != matching.MatchWarning {
		t.Errorf("steak match type = %q, want warning", steak.MatchType)
	}
	if steak.Warning == "" {
		t.Error("expected dietary warning on steak")
	}
	if report.Verdict == "" {
		t.Error("expected a menu verdict")
	}
}

func TestAnalyzeGeneratesMissingIDs(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil, nil, &stubPrefs{profile: testProfile()}, nil)

	report, err := service.Analyze(context.Background(), "user-1", []ItemInput{
		{Name: "Caprese Salad"},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(report.Analysis.SortedItems) != 1 {
		t.Fatalf("expected 1 item, got %d", len(report.Analysis.SortedItems))
	}
	if report.Analysis.SortedItems[0].ID == "" {
		t.Error("expected generated item id")
	}
}

func TestAnalyzeRequiresProfile(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil, nil, &stubPrefs{}, nil)

	_, err := service.Analyze(context.Background(), "user-1", []ItemInput{{Name: "Soup"}})
	if err != ErrProfileRequired {
		t.Fatalf("expected ErrProfileRequired, got %v", err)
	}
}

func TestAnalyzeRejectsEmptyMenu(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil, nil, &stubPrefs{profile: testProfile()}, nil)

	_, err := service.Analyze(context.Background(), "user-1", []ItemInput{{Name: "  "}})
	if err == nil {
		t.Fatal("expected error for empty menu")
	}
}

// --------------------------------------------------
// Extract
// --------------------------------------------------

func TestExtractDelegatesToLLM(t *testing.T) {
	llmStub := &stubLLM{response: `{"items":[{"name":"Lasagna","description":"baked pasta","category":"Mains"}]}`}
	service := NewService(NewMemoryRepository(), nil, nil, &stubPrefs{profile: testProfile()}, llmStub)

	items, err := service.Extract(context.Background(), "LASAGNA - baked pasta ... 12")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Lasagna" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestExtractRequiresText(t *testing.T) {
	service := NewService(NewMemoryRepository(), nil, nil, &stubPrefs{}, &stubLLM{})

	if _, err := service.Extract(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank menu text")
	}
}

// --------------------------------------------------
// Photo upload
// --------------------------------------------------

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func TestUploadPhotoStoresUnderRestaurantKey(t *testing.T) {
	restaurants := restaurant.NewMemoryRepository()
	saved := &restaurant.SavedRestaurant{UserID: "user-1", PlaceID: "place-1", Name: "Trattoria"}
	if err := restaurants.Upsert(context.Background(), saved); err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	storage := &inMemoryStorage{}
	service := NewService(NewMemoryRepository(), storage, restaurants, &stubPrefs{profile: testProfile()}, nil)

	file := fakeFile{bytes.NewReader([]byte("not really a jpeg"))}
	upload, err := service.UploadPhoto(
		context.Background(), "user-1", saved.ID, file, "menu.jpg", "image/jpeg",
	)
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}

	if !strings.HasPrefix(storage.lastKey, "menu-photos/"+saved.ID+"/") {
		t.Errorf("object key = %q", storage.lastKey)
	}
	if !strings.HasSuffix(storage.lastKey, ".jpg") {
		t.Errorf("object key missing extension: %q", storage.lastKey)
	}
	if upload.ImageURL == "" || upload.ID == 0 {
		t.Errorf("incomplete upload record: %+v", upload)
	}
}

func TestUploadPhotoRejectsForeignRestaurant(t *testing.T) {
	restaurants := restaurant.NewMemoryRepository()
	saved := &restaurant.SavedRestaurant{UserID: "user-1", PlaceID: "place-1"}
	if err := restaurants.Upsert(context.Background(), saved); err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	service := NewService(NewMemoryRepository(), &inMemoryStorage{}, restaurants, &stubPrefs{profile: testProfile()}, nil)

	file := fakeFile{bytes.NewReader([]byte("x"))}
	_, err := service.UploadPhoto(
		context.Background(), "user-2", saved.ID, file, "menu.jpg", "image/jpeg",
	)
	if err == nil {
		t.Fatal("expected error for another user's restaurant")
	}
}

func TestValidatePhotoExtension(t *testing.T) {
	if err := ValidatePhotoExtension("menu.JPG"); err != nil {
		t.Errorf("uppercase jpg rejected: %v", err)
	}
	if err := ValidatePhotoExtension("menu.pdf"); err == nil {
		t.Error("pdf should be rejected")
	}
	if err := ValidatePhotoExtension("menu"); err == nil {
		t.Error("missing extension should be rejected")
	}
}
