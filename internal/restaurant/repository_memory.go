package restaurant

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// In-memory implementation for tests and local runs without Postgres.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*SavedRestaurant
	byPlace map[string]string // userID+"|"+placeID -> id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*SavedRestaurant),
		byPlace: make(map[string]string),
	}
}

func (r *MemoryRepository) Upsert(ctx context.Context, restaurant *SavedRestaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := restaurant.UserID + "|" + restaurant.PlaceID
	if id, ok := r.byPlace[key]; ok {
		restaurant.ID = id
		restaurant.CreatedAt = r.byID[id].CreatedAt
	} else {
		restaurant.ID = uuid.New().String()
		restaurant.CreatedAt = time.Now()
		r.byPlace[key] = restaurant.ID
	}

	clone := *restaurant
	r.byID[restaurant.ID] = &clone
	return nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*SavedRestaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*SavedRestaurant
	for _, restaurant := range r.byID {
		if restaurant.UserID == userID {
			clone := *restaurant
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string, userID string) (*SavedRestaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.byID[id]
	if !ok || restaurant.UserID != userID {
		return nil, errors.New("restaurant not found")
	}
	clone := *restaurant
	return &clone, nil
}
