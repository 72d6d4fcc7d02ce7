package repository

import (
	"context"
	"errors"

	"realty-api/internal/domain"
)

// ErrNotFound reports that a requested id has no live record. It is an
// expected outcome, not a fault; handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// PropertyRepository defines the interface for listing storage.
type PropertyRepository interface {
	Create(ctx context.Context, insert domain.PropertyInsert) (domain.Property, error)
	// GetByID looks a listing up regardless of its isActive flag.
	GetByID(ctx context.Context, id string) (domain.Property, error)
	// List returns active listings satisfying every provided filter
	// constraint, in insertion order.
	List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	// Update merges the provided fields over the stored record and
	// refreshes updatedAt.
	Update(ctx context.Context, id string, update domain.PropertyUpdate) (domain.Property, error)
	// Delete removes the record outright; isActive stays a separate
	// visibility flag toggled via Update.
	Delete(ctx context.Context, id string) error
}

// InquiryRepository defines the interface for contact inquiries. Inquiries
// are create-only.
type InquiryRepository interface {
	Create(ctx context.Context, insert domain.InquiryInsert) (domain.Inquiry, error)
}

// UserRepository defines the interface for user records. Create performs no
// username-uniqueness check itself; callers that care must look the name up
// first, and the Postgres schema backs this with a unique index.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	Create(ctx context.Context, insert domain.UserInsert) (domain.User, error)
}
