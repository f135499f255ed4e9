package preferences

import (
	"strings"
	"time"
)

// Sentinel values the frontend sends inside otherwise plain string lists.
// They are normalized into RestrictionList at the service boundary and
// never stored or scored as literal values.
const (
	SentinelNoRestrictions = "No Restrictions"
	SentinelDoesntApply    = "Doesn't Apply"
)

// Supported price ranges
const (
	PriceBudget   = "budget"
	PriceModerate = "moderate"
	PriceUpscale  = "upscale"
	PriceLuxury   = "luxury"
)

// RestrictionList is a string set whose sentinel value is mutually
// exclusive with every other entry. Either Unrestricted is true and
// Values is empty, or Unrestricted is false and Values holds zero
// occurrences of the sentinel.
type RestrictionList struct {
	Unrestricted bool     `json:"unrestricted"`
	Values       []string `json:"values,omitempty"`
}

// NewRestrictionList normalizes a raw wire list against its sentinel.
// A list of exactly [sentinel] becomes Unrestricted; a sentinel mixed
// in with real values is dropped (selecting anything else removes it).
func NewRestrictionList(raw []string, sentinel string) RestrictionList {
	var values []string
	sawSentinel := false

	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.EqualFold(v, sentinel) {
			sawSentinel = true
			continue
		}
		values = append(values, v)
	}

	if sawSentinel && len(values) == 0 {
		return RestrictionList{Unrestricted: true}
	}
	return RestrictionList{Values: values}
}

// IsEmpty reports whether the list constrains nothing: either the user
// opted out via the sentinel or never selected anything.
func (l RestrictionList) IsEmpty() bool {
	return l.Unrestricted || len(l.Values) == 0
}

// Raw converts back to the wire representation the frontend expects.
func (l RestrictionList) Raw(sentinel string) []string {
	if l.Unrestricted {
		return []string{sentinel}
	}
	return l.Values
}

// Profile is the user's stored dining preferences. One record per user,
// upsert-only.
type Profile struct {
	UserID                string          `json:"-"`
	CuisinePreferences    []string        `json:"cuisine_preferences"`
	DietaryRestrictions   RestrictionList `json:"dietary_restrictions"`
	FoodsToAvoid          RestrictionList `json:"foods_to_avoid"`
	AtmospherePreferences []string        `json:"atmosphere_preferences"`
	FavoriteProteins      RestrictionList `json:"favorite_proteins"`

	// SpiceLevel (1-5) is stored and editable but not consumed by any
	// scoring function.
	SpiceLevel int `json:"spice_level"`

	PriceRange string `json:"price_range"`

	// SpecialConsiderations is free text, display-only.
	SpecialConsiderations string `json:"special_considerations"`

	UpdatedAt time.Time `json:"updated_at"`
}

func validPriceRange(pr string) bool {
	switch pr {
	case "", PriceBudget, PriceModerate, PriceUpscale, PriceLuxury:
		return true
	}
	return false
}
