package preferences

import (
	"context"
	"errors"
)

// ErrNotFound means the user has no stored profile yet. Callers treat
// this as a valid state, not a failure.
var ErrNotFound = errors.New("preferences not found")

// Repository defines the data-access contract. One record per user,
// upsert-only; profiles are never deleted, only overwritten.
type Repository interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}
