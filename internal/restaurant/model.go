package restaurant

import (
	"time"

	"foodielink/internal/matching"
)

// SavedRestaurant is an imported restaurant pinned to a user's list.
// Features are cached as imported; match scores are always recomputed
// against the current profile.
type SavedRestaurant struct {
	ID        string            `json:"id"`
	UserID    string            `json:"-"`
	PlaceID   string            `json:"place_id"`
	Name      string            `json:"name"`
	Address   string            `json:"address,omitempty"`
	Features  matching.Features `json:"features"`
	CreatedAt time.Time         `json:"created_at"`
}

// MatchView is the full personalized view of one restaurant.
type MatchView struct {
	Restaurant   *SavedRestaurant           `json:"restaurant"`
	OverallScore int                        `json:"overall_score"`
	Categories   []matching.CategoryMatch   `json:"categories"`
	Verdict      matching.RestaurantVerdict `json:"verdict"`
	Reasons      []matching.Reason          `json:"reasons"`
}
