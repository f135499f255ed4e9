package preferences

import (
	"context"
	"testing"
)

// --------------------------------------------------
// Sentinel normalization
// --------------------------------------------------

func TestNewRestrictionList_SentinelOnly(t *testing.T) {
	list := NewRestrictionList([]string{SentinelNoRestrictions}, SentinelNoRestrictions)

	if !list.Unrestricted {
		t.Fatal("expected Unrestricted for sentinel-only list")
	}
	if len(list.Values) != 0 {
		t.Fatalf("expected no values, got %v", list.Values)
	}
}

func TestNewRestrictionList_SentinelDroppedWhenMixed(t *testing.T) {
	list := NewRestrictionList(
		[]string{"Vegetarian", SentinelNoRestrictions, "Gluten-Free"},
		SentinelNoRestrictions,
	)

	if list.Unrestricted {
		t.Fatal("selecting real values must remove the sentinel")
	}
	if len(list.Values) != 2 {
		t.Fatalf("expected 2 values, got %v", list.Values)
	}
	for _, v := range list.Values {
		if v == SentinelNoRestrictions {
			t.Fatal("sentinel leaked into values")
		}
	}
}

func TestNewRestrictionList_EmptyAndBlank(t *testing.T) {
	list := NewRestrictionList([]string{"", "  "}, SentinelNoRestrictions)

	if list.Unrestricted {
		t.Fatal("blank input is empty, not unrestricted")
	}
	if !list.IsEmpty() {
		t.Fatal("expected empty list")
	}
}

func TestRestrictionList_RawRoundTrip(t *testing.T) {
	unrestricted := RestrictionList{Unrestricted: true}
	raw := unrestricted.Raw(SentinelDoesntApply)
	if len(raw) != 1 || raw[0] != SentinelDoesntApply {
		t.Fatalf("expected [%q], got %v", SentinelDoesntApply, raw)
	}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func validInput() ProfileInput {
	return ProfileInput{
		CuisinePreferences:  []string{"Italian"},
		DietaryRestrictions: []string{"Vegetarian"},
		FavoriteProteins:    []string{SentinelDoesntApply},
		SpiceLevel:          3,
		PriceRange:          PriceModerate,
	}
}

func TestSave_NormalizesSentinels(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	profile, err := service.Save(context.Background(), "user-1", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !profile.FavoriteProteins.Unrestricted {
		t.Error("expected proteins Unrestricted after sentinel input")
	}
	if profile.DietaryRestrictions.IsEmpty() {
		t.Error("expected dietary restrictions to survive")
	}
}

func TestSave_RejectsBadSpiceLevel(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	for _, level := range []int{0, 6, -1} {
		input := validInput()
		input.SpiceLevel = level
		if _, err := service.Save(context.Background(), "user-1", input); err == nil {
			t.Errorf("expected error for spice level %d", level)
		}
	}
}

func TestSave_RejectsBadPriceRange(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	input := validInput()
	input.PriceRange = "cheap"
	if _, err := service.Save(context.Background(), "user-1", input); err == nil {
		t.Fatal("expected error for unknown price range")
	}
}

func TestSave_UpsertOverwrites(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)
	ctx := context.Background()

	if _, err := service.Save(ctx, "user-1", validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := validInput()
	second.CuisinePreferences = []string{"Thai", "Mexican"}
	if _, err := service.Save(ctx, "user-1", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := service.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored.CuisinePreferences) != 2 {
		t.Fatalf("expected overwritten cuisines, got %v", stored.CuisinePreferences)
	}
}

type onboardingRecorder struct {
	userID string
	status string
}

func (o *onboardingRecorder) UpdateOnboardingStatus(ctx context.Context, userID, status string) error {
	o.userID = userID
	o.status = status
	return nil
}

func TestSave_MarksOnboardingComplete(t *testing.T) {
	recorder := &onboardingRecorder{}
	service := NewService(NewInMemoryRepository(), recorder)

	if _, err := service.Save(context.Background(), "user-9", validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if recorder.userID != "user-9" || recorder.status != "COMPLETED" {
		t.Fatalf("expected onboarding completion, got %+v", recorder)
	}
}

func TestGet_MissingProfile(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	_, err := service.Get(context.Background(), "nobody")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
