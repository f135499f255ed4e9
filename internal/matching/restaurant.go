package matching

import (
	"math"
	"sort"

	"foodielink/internal/preferences"
)

// Category weights. Dietary and cuisine dominate because mismatches
// there are the most consequential to a diner.
const (
	weightCuisine    = 0.35
	weightDietary    = 0.35
	weightAtmosphere = 0.15
	weightPrice      = 0.15
)

// CategoryScores holds the four raw category scores.
type CategoryScores struct {
	Cuisine    int `json:"cuisine"`
	Dietary    int `json:"dietary"`
	Atmosphere int `json:"atmosphere"`
	Price      int `json:"price"`
}

// MatchResult is the restaurant-level match: a weighted overall score
// and the category breakdown, strongest category first.
type MatchResult struct {
	OverallScore int             `json:"overall_score"`
	Categories   []CategoryMatch `json:"categories"`
	Scores       CategoryScores  `json:"scores"`
}

// WeightedOverall combines the four category scores into the 0-100
// overall score.
func WeightedOverall(s CategoryScores) int {
	return int(math.Round(
		weightCuisine*float64(s.Cuisine) +
			weightDietary*float64(s.Dietary) +
			weightAtmosphere*float64(s.Atmosphere) +
			weightPrice*float64(s.Price),
	))
}

// MatchRestaurant runs all four category matchers and aggregates them.
func MatchRestaurant(f Features, p preferences.Profile) MatchResult {
	cuisine := MatchCuisine(f, p)
	dietary := MatchDietary(f, p)
	atmosphere := MatchAtmosphere(f, p)
	price := MatchPrice(f, p)

	cuisine.Icon = "🍽️"
	dietary.Icon = "🥗"
	atmosphere.Icon = "✨"
	price.Icon = "💰"

	scores := CategoryScores{
		Cuisine:    cuisine.Score,
		Dietary:    dietary.Score,
		Atmosphere: atmosphere.Score,
		Price:      price.Score,
	}

	categories := []CategoryMatch{cuisine, dietary, atmosphere, price}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Score > categories[j].Score
	})

	return MatchResult{
		OverallScore: WeightedOverall(scores),
		Categories:   categories,
		Scores:       scores,
	}
}
