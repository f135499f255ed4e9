package restaurant

import (
	"context"
	"errors"

	"foodielink/internal/matching"
	"foodielink/internal/places"
	"foodielink/internal/preferences"
)

// ErrProfileRequired means the user has no stored preference profile.
// Scoring never runs against a half-loaded profile; the frontend
// surfaces this as a "complete your taste profile" state.
var ErrProfileRequired = errors.New("complete your taste profile first")

// PreferenceReader is the slice of the preferences service this
// package depends on.
type PreferenceReader interface {
	Get(ctx context.Context, userID string) (*preferences.Profile, error)
}

type Service struct {
	repo     Repository
	provider places.Provider
	prefs    PreferenceReader
}

func NewService(
	repo Repository,
	provider places.Provider,
	prefs PreferenceReader,
) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		prefs:    prefs,
	}
}

// --------------------------------------------------
// Import restaurant (maps link or text search)
// --------------------------------------------------
func (s *Service) Import(
	ctx context.Context,
	userID string,
	mapsURL string,
	query string,
) (*MatchView, error) {

	profile, err := s.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	place, err := s.resolve(ctx, mapsURL, query)
	if err != nil {
		return nil, err
	}

	restaurant := &SavedRestaurant{
		UserID:   userID,
		PlaceID:  place.PlaceID,
		Name:     place.Features.Name,
		Address:  place.Address,
		Features: place.Features,
	}

	if err := s.repo.Upsert(ctx, restaurant); err != nil {
		return nil, err
	}

	return buildView(restaurant, profile), nil
}

// --------------------------------------------------
// List saved restaurants (scores recomputed)
// --------------------------------------------------
func (s *Service) ListSaved(ctx context.Context, userID string) ([]*MatchView, error) {
	profile, err := s.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*MatchView, 0, len(saved))
	for _, restaurant := range saved {
		views = append(views, buildView(restaurant, profile))
	}
	return views, nil
}

// --------------------------------------------------
// Match one saved restaurant
// --------------------------------------------------
func (s *Service) Match(ctx context.Context, id string, userID string) (*MatchView, error) {
	profile, err := s.profileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	restaurant, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return buildView(restaurant, profile), nil
}

func (s *Service) profileFor(ctx context.Context, userID string) (*preferences.Profile, error) {
	profile, err := s.prefs.Get(ctx, userID)
	if err == preferences.ErrNotFound {
		return nil, ErrProfileRequired
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Service) resolve(ctx context.Context, mapsURL string, query string) (*places.Place, error) {
	if mapsURL != "" {
		target, err := places.ResolveMapsLink(mapsURL)
		if err != nil {
			return nil, err
		}
		if target.PlaceID != "" {
			return s.provider.Details(ctx, target.PlaceID)
		}
		return s.provider.Search(ctx, target.Query)
	}

	if query != "" {
		return s.provider.Search(ctx, query)
	}

	return nil, errors.New("missing maps_url or query")
}

func buildView(restaurant *SavedRestaurant, profile *preferences.Profile) *MatchView {
	match := matching.MatchRestaurant(restaurant.Features, *profile)
	verdict := matching.GenerateVerdict(match.Scores, restaurant.Features, *profile)

	return &MatchView{
		Restaurant:   restaurant,
		OverallScore: match.OverallScore,
		Categories:   match.Categories,
		Verdict:      verdict.Verdict,
		Reasons:      verdict.Reasons,
	}
}
