package places

import (
	"context"

	"foodielink/internal/matching"
)

// Place is one resolved restaurant from the places provider.
type Place struct {
	PlaceID  string            `json:"place_id"`
	Address  string            `json:"address,omitempty"`
	Features matching.Features `json:"features"`
}

// Provider is the external restaurant data source.
type Provider interface {
	Details(ctx context.Context, placeID string) (*Place, error)
	Search(ctx context.Context, query string) (*Place, error)
}
