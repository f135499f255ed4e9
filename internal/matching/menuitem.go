package matching

import (
	"strings"

	"foodielink/internal/preferences"
)

// MenuItem is a single dish as extracted from a menu. ID is opaque and
// unique within one menu.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// ItemScore is the raw scoring outcome before tier resolution.
type ItemScore struct {
	Score   int      `json:"score"`
	Factors []string `json:"factors,omitempty"`
	Warning string   `json:"warning,omitempty"`
}

// Scoring constants. A dietary conflict is an absolute override: no
// bonus can raise a conflicting item above dietaryConflictScore.
const (
	baseItemScore          = 50
	dietaryConflictScore   = 20
	avoidedIngredientScore = 30
	dietaryFitBonus        = 30
	cuisineBonus           = 25
	proteinBonus           = 20
)

func itemContent(item MenuItem) string {
	return strings.ToLower(item.Name + " " + item.Description + " " + item.Category)
}

// ScoreMenuItem scores one menu item against the profile. Ordered
// pipeline, short-circuiting on dietary conflict:
//
//  1. any active restriction's forbidden keyword present -> 20, done
//  2. base 50, +30 when restrictions exist and none conflict
//  3. +25 when a preferred cuisine name appears in the content
//  4. +20 when a favorite protein appears in the content
//  5. any avoided food present -> override to 30 (runs after the
//     bonuses, so it can lower an already-boosted score)
//  6. clamp to 0-100
func ScoreMenuItem(item MenuItem, p preferences.Profile) ItemScore {
	content := itemContent(item)

	if !p.DietaryRestrictions.IsEmpty() {
		var conflicts []string
		for _, restriction := range p.DietaryRestrictions.Values {
			for _, keyword := range forbiddenKeywords(restriction) {
				if strings.Contains(content, keyword) {
					conflicts = append(conflicts, restriction)
					break
				}
			}
		}
		if len(conflicts) > 0 {
			return ItemScore{
				Score:   dietaryConflictScore,
				Warning: "Conflicts with your " + strings.Join(conflicts, ", ") + " restriction",
			}
		}
	}

	score := baseItemScore
	var factors []string

	if !p.DietaryRestrictions.IsEmpty() {
		score += dietaryFitBonus
		factors = append(factors, "Matches your dietary preferences")
	}

	for _, cuisine := range p.CuisinePreferences {
		if cuisine == "" {
			continue
		}
		if strings.Contains(content, strings.ToLower(cuisine)) {
			score += cuisineBonus
			factors = append(factors, "Features "+cuisine+" flavors you enjoy")
			break
		}
	}

	if !p.FavoriteProteins.Unrestricted {
		for _, protein := range p.FavoriteProteins.Values {
			if protein == "" {
				continue
			}
			if strings.Contains(content, strings.ToLower(protein)) {
				score += proteinBonus
				factors = append(factors, "Contains "+protein+", one of your favorite proteins")
				break
			}
		}
	}

	if !p.FoodsToAvoid.IsEmpty() {
		var found []string
		for _, avoid := range p.FoodsToAvoid.Values {
			if avoid == "" {
				continue
			}
			if strings.Contains(content, strings.ToLower(avoid)) {
				found = append(found, avoid)
			}
		}
		if len(found) > 0 {
			return ItemScore{
				Score:   avoidedIngredientScore,
				Warning: "Contains " + strings.Join(found, ", ") + ", which you prefer to avoid",
			}
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return ItemScore{Score: score, Factors: factors}
}
