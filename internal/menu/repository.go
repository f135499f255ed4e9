package menu

import "context"

// Repository defines all database operations for menu uploads
type Repository interface {
	RecordUpload(ctx context.Context, restaurantID string, imageURL string) (*Upload, error)

	ListByRestaurant(ctx context.Context, restaurantID string) ([]*Upload, error)
}
