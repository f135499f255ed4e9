package matching

import (
	"fmt"

	"foodielink/internal/preferences"
)

// RestaurantVerdict is the restaurant-level three-tier recommendation.
type RestaurantVerdict string

const (
	VerdictMustVisit RestaurantVerdict = "MUST VISIT"
	VerdictWorthATry RestaurantVerdict = "WORTH A TRY"
	VerdictSkipIt    RestaurantVerdict = "SKIP IT"
)

// MenuVerdict is the menu-level naming of the same three tiers. The two
// enums evolved separately in the product copy and are kept separate on
// purpose.
type MenuVerdict string

const (
	MenuVerdictPerfectMatch         MenuVerdict = "PERFECT MATCH"
	MenuVerdictWorthExploring       MenuVerdict = "WORTH EXPLORING"
	MenuVerdictConsiderAlternatives MenuVerdict = "CONSIDER ALTERNATIVES"
)

// Verdict tier cut-offs, shared by both namings.
const (
	topTierThreshold    = 85
	middleTierThreshold = 65
)

// Reason is one ranked justification line shown under the verdict.
type Reason struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

// Verdict is "the app's opinion" of a restaurant: the tier plus up to 3
// ranked reasons.
type Verdict struct {
	Verdict RestaurantVerdict `json:"verdict"`
	Reasons []Reason          `json:"reasons"`
}

const maxReasons = 3

func ResolveRestaurantVerdict(overall int) RestaurantVerdict {
	switch {
	case overall >= topTierThreshold:
		return VerdictMustVisit
	case overall >= middleTierThreshold:
		return VerdictWorthATry
	default:
		return VerdictSkipIt
	}
}

func ResolveMenuVerdict(score int) MenuVerdict {
	switch {
	case score >= topTierThreshold:
		return MenuVerdictPerfectMatch
	case score >= middleTierThreshold:
		return MenuVerdictWorthExploring
	default:
		return MenuVerdictConsiderAlternatives
	}
}

// GenerateVerdict builds the restaurant-level verdict and its reasons.
// Reason generation is priority-ordered, not exhaustive: dietary first,
// then cuisine, price, atmosphere, proteins, and a high-rating filler.
// The list is padded to at least 2 with generic positive facts when
// possible and always capped at 3, earlier reasons winning the slots.
func GenerateVerdict(scores CategoryScores, f Features, p preferences.Profile) Verdict {
	overall := WeightedOverall(scores)

	var reasons []Reason

	switch {
	case scores.Dietary >= 90:
		reasons = append(reasons, Reason{"🥗", "Fits your dietary needs"})
	case scores.Dietary <= 40:
		reasons = append(reasons, Reason{"⚠️", "May not accommodate your dietary needs"})
	}

	switch {
	case scores.Cuisine >= 85:
		reasons = append(reasons, Reason{"🍽️", "Perfect match for your cuisine preferences"})
	case scores.Cuisine >= 70:
		reasons = append(reasons, Reason{"🍽️", "Similar to cuisines you enjoy"})
	}

	if scores.Price >= 90 {
		reasons = append(reasons, Reason{"💰", "Right in your price range"})
	}

	if scores.Atmosphere >= 85 {
		reasons = append(reasons, Reason{"✨", "The atmosphere you're looking for"})
	}

	if !p.FavoriteProteins.IsEmpty() && f.ServesDinner {
		reasons = append(reasons, Reason{"🍖", "Likely to serve your favorite proteins"})
	}

	if len(reasons) < maxReasons && f.Rating >= 4.5 {
		reasons = append(reasons, Reason{"⭐", fmt.Sprintf("Highly rated at %.1f stars", f.Rating)})
	}

	// Guarantee at least 2 reasons when the restaurant gives us
	// anything generic to say.
	if len(reasons) < 2 {
		fallbacks := []struct {
			ok     bool
			reason Reason
		}{
			{f.ServesVegetarianFood, Reason{"🥦", "Vegetarian options available"}},
			{f.Delivery, Reason{"🛵", "Offers delivery"}},
			{f.Reservable, Reason{"📅", "Takes reservations"}},
		}
		for _, fb := range fallbacks {
			if len(reasons) >= 2 {
				break
			}
			if fb.ok {
				reasons = append(reasons, fb.reason)
			}
		}
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}

	return Verdict{
		Verdict: ResolveRestaurantVerdict(overall),
		Reasons: reasons,
	}
}
