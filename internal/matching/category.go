package matching

import (
	"fmt"
	"strings"

	"foodielink/internal/preferences"
)

// CategoryMatch is one category's contribution to the restaurant match.
type CategoryMatch struct {
	Category    string `json:"category"`
	Score       int    `json:"score"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Default scores returned when the relevant preference field is empty.
const (
	defaultCuisineScore    = 85
	defaultDietaryScore    = 90
	defaultAtmosphereScore = 85
	defaultPriceScore      = 85
)

// MatchCuisine counts how many of the restaurant's cuisine tags contain
// a preferred cuisine name. Tags arrive free-text from the places
// provider, so this is a case-insensitive substring heuristic, not a
// taxonomy join.
func MatchCuisine(f Features, p preferences.Profile) CategoryMatch {
	if len(p.CuisinePreferences) == 0 {
		return CategoryMatch{
			Category:    "Cuisine",
			Score:       defaultCuisineScore,
			Description: "Based on popular cuisine type",
		}
	}

	matchCount := 0
	for _, tag := range f.CuisineTypes {
		tag = strings.ToLower(tag)
		for _, pref := range p.CuisinePreferences {
			if pref == "" {
				continue
			}
			if strings.Contains(tag, strings.ToLower(pref)) {
				matchCount++
				break
			}
		}
	}

	if matchCount == 0 {
		return CategoryMatch{
			Category:    "Cuisine",
			Score:       70,
			Description: "Different from your preferred cuisines",
		}
	}

	score := 70 + 10*matchCount
	if score > 100 {
		score = 100
	}
	return CategoryMatch{
		Category:    "Cuisine",
		Score:       score,
		Description: fmt.Sprintf("Matches %d of your preferred cuisines", matchCount),
	}
}

// MatchDietary is a binary proxy at the restaurant level: vegetarian
// availability stands in for dietary friendliness. Full per-restriction
// conflict checking happens per menu item in ScoreMenuItem.
func MatchDietary(f Features, p preferences.Profile) CategoryMatch {
	if p.DietaryRestrictions.IsEmpty() {
		return CategoryMatch{
			Category:    "Dietary",
			Score:       defaultDietaryScore,
			Description: "No dietary restrictions specified",
		}
	}

	if f.ServesVegetarianFood {
		return CategoryMatch{
			Category:    "Dietary",
			Score:       95,
			Description: "Vegetarian options available",
		}
	}
	return CategoryMatch{
		Category:    "Dietary",
		Score:       75,
		Description: "Limited information on dietary accommodations",
	}
}

// MatchAtmosphere derives a small attribute set from service flags and
// counts overlaps with the user's atmosphere preferences.
func MatchAtmosphere(f Features, p preferences.Profile) CategoryMatch {
	if len(p.AtmospherePreferences) == 0 {
		return CategoryMatch{
			Category:    "Atmosphere",
			Score:       defaultAtmosphereScore,
			Description: "Based on general atmosphere",
		}
	}

	var attributes []string
	if f.Reservable {
		attributes = append(attributes, "Fine Dining")
	}
	if f.DineIn {
		attributes = append(attributes, "Casual Dining")
	}

	matchCount := 0
	for _, attr := range attributes {
		for _, pref := range p.AtmospherePreferences {
			if strings.EqualFold(attr, pref) {
				matchCount++
				break
			}
		}
	}

	if matchCount == 0 {
		return CategoryMatch{
			Category:    "Atmosphere",
			Score:       75,
			Description: "Atmosphere may differ from your preference",
		}
	}

	score := 75 + 10*matchCount
	if score > 100 {
		score = 100
	}
	return CategoryMatch{
		Category:    "Atmosphere",
		Score:       score,
		Description: "Matches your preferred atmosphere",
	}
}

// acceptedPriceLevels maps a preferred price range to the Google price
// levels it tolerates.
var acceptedPriceLevels = map[string][]int{
	preferences.PriceBudget:   {1},
	preferences.PriceModerate: {1, 2},
	preferences.PriceUpscale:  {2, 3},
	preferences.PriceLuxury:   {3, 4},
}

// MatchPrice checks the restaurant's price level against the accepted
// set for the user's price range. An unknown level defaults to 2.
func MatchPrice(f Features, p preferences.Profile) CategoryMatch {
	if p.PriceRange == "" {
		return CategoryMatch{
			Category:    "Price",
			Score:       defaultPriceScore,
			Description: "Price range not specified",
		}
	}

	level := f.PriceLevel
	if level == 0 {
		level = 2
	}

	for _, accepted := range acceptedPriceLevels[p.PriceRange] {
		if level == accepted {
			return CategoryMatch{
				Category:    "Price",
				Score:       95,
				Description: "Fits your price range",
			}
		}
	}
	return CategoryMatch{
		Category:    "Price",
		Score:       75,
		Description: "Outside your usual price range",
	}
}
