package matching

import (
	"strings"
	"testing"

	"foodielink/internal/preferences"
)

func restricted(values ...string) preferences.RestrictionList {
	return preferences.NewRestrictionList(values, preferences.SentinelNoRestrictions)
}

func TestScoreMenuItem_DietaryConflictIsAbsolute(t *testing.T) {
	// Cuisine and protein both match, but the conflict overrides all
	// bonuses.
	profile := preferences.Profile{
		DietaryRestrictions: restricted("Vegetarian"),
		CuisinePreferences:  []string{"Italian"},
		FavoriteProteins:    preferences.NewRestrictionList([]string{"Chicken"}, preferences.SentinelDoesntApply),
	}
	item := MenuItem{ID: "1", Name: "Italian Chicken Parmesan"}

	got := ScoreMenuItem(item, profile)
	if got.Score != 20 {
		t.Fatalf("expected hard override score 20, got %d", got.Score)
	}
	if !strings.Contains(got.Warning, "Vegetarian") {
		t.Errorf("expected warning to name the restriction, got %q", got.Warning)
	}
}

func TestScoreMenuItem_VeganCheesePizza(t *testing.T) {
	profile := preferences.Profile{
		DietaryRestrictions: restricted("Vegan"),
	}
	item := MenuItem{ID: "1", Name: "Cheese Pizza"}

	got := ScoreMenuItem(item, profile)
	if got.Score != 20 {
		t.Fatalf("expected 20, got %d", got.Score)
	}
	if !strings.Contains(got.Warning, "Vegan") {
		t.Errorf("expected warning mentioning Vegan, got %q", got.Warning)
	}
}

func TestScoreMenuItem_ProteinBonus(t *testing.T) {
	profile := preferences.Profile{
		FavoriteProteins: preferences.NewRestrictionList([]string{"Chicken"}, preferences.SentinelDoesntApply),
	}
	item := MenuItem{ID: "1", Name: "Grilled Chicken Salad"}

	got := ScoreMenuItem(item, profile)
	if got.Score != 70 {
		t.Fatalf("expected 50 base + 20 protein = 70, got %d", got.Score)
	}

	matchType, _ := ResolveMatchType(got.Score)
	if matchType != MatchNeutral {
		t.Errorf("expected neutral tier at 70, got %s", matchType)
	}
}

func TestScoreMenuItem_DietaryFitBonus(t *testing.T) {
	profile := preferences.Profile{
		DietaryRestrictions: restricted("Vegetarian"),
	}
	item := MenuItem{ID: "1", Name: "Garden Salad", Description: "mixed greens and tomato"}

	got := ScoreMenuItem(item, profile)
	if got.Score != 80 {
		t.Fatalf("expected 50 base + 30 dietary fit = 80, got %d", got.Score)
	}
}

func TestScoreMenuItem_AvoidOverridesBoosts(t *testing.T) {
	// Protein bonus fires first, then the avoided ingredient drags the
	// score down to 30. The late override is deliberate.
	profile := preferences.Profile{
		FavoriteProteins: preferences.NewRestrictionList([]string{"Chicken"}, preferences.SentinelDoesntApply),
		FoodsToAvoid:     restricted("mushroom"),
	}
	item := MenuItem{ID: "1", Name: "Chicken Mushroom Risotto"}

	got := ScoreMenuItem(item, profile)
	if got.Score != 30 {
		t.Fatalf("expected avoid override 30, got %d", got.Score)
	}
	if !strings.Contains(got.Warning, "mushroom") {
		t.Errorf("expected warning naming the avoided food, got %q", got.Warning)
	}
}

func TestScoreMenuItem_ClampedAt100(t *testing.T) {
	profile := preferences.Profile{
		DietaryRestrictions: restricted("Gluten-Free"),
		CuisinePreferences:  []string{"Thai"},
		FavoriteProteins:    preferences.NewRestrictionList([]string{"Shrimp"}, preferences.SentinelDoesntApply),
	}
	// 50 + 30 + 25 + 20 = 125, clamps to 100.
	item := MenuItem{ID: "1", Name: "Thai Shrimp Curry", Description: "rice noodles in coconut curry"}

	got := ScoreMenuItem(item, profile)
	if got.Score != 100 {
		t.Fatalf("expected clamp at 100, got %d", got.Score)
	}
}

func TestScoreMenuItem_RestrictionNameNormalization(t *testing.T) {
	// "Gluten Free" and "Gluten-Free" must hit the same keyword table.
	for _, name := range []string{"Gluten Free", "Gluten-Free", "gluten free"} {
		profile := preferences.Profile{DietaryRestrictions: restricted(name)}
		got := ScoreMenuItem(MenuItem{ID: "1", Name: "Penne Pasta"}, profile)
		if got.Score != 20 {
			t.Errorf("restriction %q: expected conflict score 20, got %d", name, got.Score)
		}
	}
}

func TestScoreMenuItem_CategoryCountsAsContent(t *testing.T) {
	profile := preferences.Profile{DietaryRestrictions: restricted("Vegetarian")}
	item := MenuItem{ID: "1", Name: "House Special", Category: "Meat Entrees"}

	got := ScoreMenuItem(item, profile)
	if got.Score != 20 {
		t.Fatalf("expected conflict via category text, got %d", got.Score)
	}
}
