package menu

import (
	"context"
	"sync"
	"time"
)

// In-memory implementation for tests and local runs without Postgres.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int
	uploads []*Upload
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) RecordUpload(
	ctx context.Context,
	restaurantID string,
	imageURL string,
) (*Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	upload := &Upload{
		ID:           r.nextID,
		RestaurantID: restaurantID,
		ImageURL:     imageURL,
		CreatedAt:    time.Now(),
	}
	r.nextID++
	r.uploads = append(r.uploads, upload)

	clone := *upload
	return &clone, nil
}

func (r *MemoryRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]*Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Upload
	for i := len(r.uploads) - 1; i >= 0; i-- {
		if r.uploads[i].RestaurantID == restaurantID {
			clone := *r.uploads[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}
