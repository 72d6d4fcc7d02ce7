package repository

import (
	"context"
	"sync"

	"realty-api/internal/domain"
)

// memoryPropertyRepository implements PropertyRepository over a mutex-guarded
// map. An insertion-order index keeps List deterministic. Every operation is
// atomic with respect to itself; nothing here provides cross-operation
// atomicity.
type memoryPropertyRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Property
	order []string
}

// NewMemoryPropertyRepository creates an empty in-memory property store.
func NewMemoryPropertyRepository() PropertyRepository {
	return &memoryPropertyRepository{
		items: make(map[string]domain.Property),
	}
}

func (r *memoryPropertyRepository) Create(ctx context.Context, insert domain.PropertyInsert) (domain.Property, error) {
	property := domain.NewProperty(insert)

	r.mu.Lock()
	r.items[property.ID] = property
	r.order = append(r.order, property.ID)
	r.mu.Unlock()

	return property.Clone(), nil
}

func (r *memoryPropertyRepository) GetByID(ctx context.Context, id string) (domain.Property, error) {
	r.mu.RLock()
	property, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return domain.Property{}, ErrNotFound
	}
	return property.Clone(), nil
}

func (r *memoryPropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := make([]domain.Property, 0, len(r.order))
	for _, id := range r.order {
		property := r.items[id]
		if !property.IsActive {
			continue
		}
		if !filter.Matches(property) {
			continue
		}
		properties = append(properties, property.Clone())
	}
	return properties, nil
}

func (r *memoryPropertyRepository) Update(ctx context.Context, id string, update domain.PropertyUpdate) (domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[id]
	if !ok {
		return domain.Property{}, ErrNotFound
	}

	merged := existing.Merge(update)
	r.items[id] = merged
	return merged.Clone(), nil
}

func (r *memoryPropertyRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
