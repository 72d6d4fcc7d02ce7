package repository

import (
	"context"
	"sync"

	"realty-api/internal/domain"
)

// memoryUserRepository implements UserRepository over a mutex-guarded map.
type memoryUserRepository struct {
	mu    sync.RWMutex
	items map[string]domain.User
}

// NewMemoryUserRepository creates an empty in-memory user store.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		items: make(map[string]domain.User),
	}
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	user, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return domain.User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.items {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (r *memoryUserRepository) Create(ctx context.Context, insert domain.UserInsert) (domain.User, error) {
	user := domain.NewUser(insert)

	r.mu.Lock()
	r.items[user.ID] = user
	r.mu.Unlock()

	return user, nil
}
