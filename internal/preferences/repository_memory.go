package preferences

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		profiles: make(map[string]*Profile),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *profile
	return &copied, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, profile *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile.UpdatedAt = time.Now()
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}
