package restaurant

import "context"

// Repository defines all database operations for saved restaurants
type Repository interface {

	// Create OR refresh a saved restaurant for a user (one row per
	// user+place)
	Upsert(ctx context.Context, restaurant *SavedRestaurant) error

	ListByUser(ctx context.Context, userID string) ([]*SavedRestaurant, error)

	// GetByID scopes to the owning user
	GetByID(ctx context.Context, id string, userID string) (*SavedRestaurant, error)
}
