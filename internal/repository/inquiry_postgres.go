package repository

import (
	"context"
	"fmt"

	"realty-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresInquiryRepository implements InquiryRepository on a pgx pool.
type postgresInquiryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInquiryRepository creates a Postgres-backed inquiry repository.
func NewPostgresInquiryRepository(pool *pgxpool.Pool) InquiryRepository {
	return &postgresInquiryRepository{pool: pool}
}

func (r *postgresInquiryRepository) Create(ctx context.Context, insert domain.InquiryInsert) (domain.Inquiry, error) {
	inquiry := domain.NewInquiry(insert)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO inquiries (id, property_id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		inquiry.ID, inquiry.PropertyID, inquiry.Name, inquiry.Email,
		inquiry.Phone, inquiry.Message, inquiry.CreatedAt,
	)
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return inquiry, nil
}
