package repository

import (
	"context"
	"sync"

	"realty-api/internal/domain"
)

// memoryInquiryRepository implements InquiryRepository over a mutex-guarded
// map. The propertyId reference is stored as given; no referential check is
// performed.
type memoryInquiryRepository struct {
	mu    sync.Mutex
	items map[string]domain.Inquiry
}

// NewMemoryInquiryRepository creates an empty in-memory inquiry store.
func NewMemoryInquiryRepository() InquiryRepository {
	return &memoryInquiryRepository{
		items: make(map[string]domain.Inquiry),
	}
}

func (r *memoryInquiryRepository) Create(ctx context.Context, insert domain.InquiryInsert) (domain.Inquiry, error) {
	inquiry := domain.NewInquiry(insert)

	r.mu.Lock()
	r.items[inquiry.ID] = inquiry
	r.mu.Unlock()

	return inquiry, nil
}
