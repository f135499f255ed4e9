package preferences

import (
	"context"
	"errors"
	"log"
)

// OnboardingMarker flips the user's onboarding flag once a profile is
// saved for the first time. Satisfied by the auth postgres repository.
type OnboardingMarker interface {
	UpdateOnboardingStatus(ctx context.Context, userID, status string) error
}

// ProfileInput is the wire shape of a profile edit: plain string lists
// that may still carry the sentinel values.
type ProfileInput struct {
	CuisinePreferences    []string `json:"cuisine_preferences"`
	DietaryRestrictions   []string `json:"dietary_restrictions"`
	FoodsToAvoid          []string `json:"foods_to_avoid"`
	AtmospherePreferences []string `json:"atmosphere_preferences"`
	FavoriteProteins      []string `json:"favorite_proteins"`
	SpiceLevel            int      `json:"spice_level"`
	PriceRange            string   `json:"price_range"`
	SpecialConsiderations string   `json:"special_considerations"`
}

type Service struct {
	repo       Repository
	onboarding OnboardingMarker
}

func NewService(repo Repository, onboarding OnboardingMarker) *Service {
	return &Service{repo: repo, onboarding: onboarding}
}

// Get returns the stored profile. ErrNotFound is a valid outcome and
// means "all preferences empty".
func (s *Service) Get(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.Get(ctx, userID)
}

// Save normalizes the raw input (sentinel handling included) and
// upserts the single profile row for the user.
func (s *Service) Save(ctx context.Context, userID string, input ProfileInput) (*Profile, error) {
	if userID == "" {
		return nil, errors.New("missing user id")
	}
	if input.SpiceLevel < 1 || input.SpiceLevel > 5 {
		return nil, errors.New("spice level must be between 1 and 5")
	}
	if !validPriceRange(input.PriceRange) {
		return nil, errors.New("invalid price range")
	}

	profile := &Profile{
		UserID:                userID,
		CuisinePreferences:    cleanList(input.CuisinePreferences),
		DietaryRestrictions:   NewRestrictionList(input.DietaryRestrictions, SentinelNoRestrictions),
		FoodsToAvoid:          NewRestrictionList(input.FoodsToAvoid, SentinelNoRestrictions),
		AtmospherePreferences: cleanList(input.AtmospherePreferences),
		FavoriteProteins:      NewRestrictionList(input.FavoriteProteins, SentinelDoesntApply),
		SpiceLevel:            input.SpiceLevel,
		PriceRange:            input.PriceRange,
		SpecialConsiderations: input.SpecialConsiderations,
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	if s.onboarding != nil {
		if err := s.onboarding.UpdateOnboardingStatus(ctx, userID, "COMPLETED"); err != nil {
			log.Printf("failed to mark onboarding complete for %s: %v", userID, err)
		}
	}

	return profile, nil
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
