package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"realty-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// propertyColumns selects every listing column, rendering the numeric ones
// as text so decimal amounts round-trip exactly.
const propertyColumns = `id, title, description, price::text, address, city, state, zip_code,
	property_type, status, bedrooms, bathrooms::text, square_footage, lot_size::text,
	year_built, images, amenities, features, is_active, created_at, updated_at`

// postgresPropertyRepository implements PropertyRepository on a pgx pool.
type postgresPropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPropertyRepository creates a Postgres-backed property repository.
func NewPostgresPropertyRepository(pool *pgxpool.Pool) PropertyRepository {
	return &postgresPropertyRepository{pool: pool}
}

func (r *postgresPropertyRepository) Create(ctx context.Context, insert domain.PropertyInsert) (domain.Property, error) {
	property := domain.NewProperty(insert)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO properties (
			id, title, description, price, address, city, state, zip_code,
			property_type, status, bedrooms, bathrooms, square_footage, lot_size,
			year_built, images, amenities, features, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4::numeric, $5, $6, $7, $8,
			$9, $10, $11, $12::numeric, $13, $14::numeric,
			$15, $16, $17, $18, $19, $20, $21
		)`,
		property.ID, property.Title, property.Description, property.Price,
		property.Address, property.City, property.State, property.ZipCode,
		property.PropertyType, string(property.Status), property.Bedrooms,
		property.Bathrooms, property.SquareFootage, property.LotSize,
		property.YearBuilt, property.Images, property.Amenities, property.Features,
		property.IsActive, property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

func (r *postgresPropertyRepository) GetByID(ctx context.Context, id string) (domain.Property, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	property, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Property{}, ErrNotFound
		}
		return domain.Property{}, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

func (r *postgresPropertyRepository) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	conditions := []string{"is_active"}
	args := []any{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.PropertyType != "" {
		args = append(args, filter.PropertyType)
		conditions = append(conditions, fmt.Sprintf("property_type = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := []domain.Property{}
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}
	return properties, nil
}

func (r *postgresPropertyRepository) Update(ctx context.Context, id string, update domain.PropertyUpdate) (domain.Property, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	set := func(column, cast string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d%s", column, len(args), cast))
	}

	if update.Title != nil {
		set("title", "", *update.Title)
	}
	if update.Description != nil {
		set("description", "", *update.Description)
	}
	if update.Price != nil {
		set("price", "::numeric", *update.Price)
	}
	if update.Address != nil {
		set("address", "", *update.Address)
	}
	if update.City != nil {
		set("city", "", *update.City)
	}
	if update.State != nil {
		set("state", "", *update.State)
	}
	if update.ZipCode != nil {
		set("zip_code", "", *update.ZipCode)
	}
	if update.PropertyType != nil {
		set("property_type", "", *update.PropertyType)
	}
	if update.Status != nil {
		set("status", "", string(*update.Status))
	}
	if update.Bedrooms != nil {
		set("bedrooms", "", *update.Bedrooms)
	}
	if update.Bathrooms != nil {
		set("bathrooms", "::numeric", *update.Bathrooms)
	}
	if update.SquareFootage != nil {
		set("square_footage", "", *update.SquareFootage)
	}
	if update.LotSize != nil {
		set("lot_size", "::numeric", *update.LotSize)
	}
	if update.YearBuilt != nil {
		set("year_built", "", *update.YearBuilt)
	}
	if update.Images != nil {
		set("images", "", update.Images)
	}
	if update.Amenities != nil {
		set("amenities", "", update.Amenities)
	}
	if update.Features != nil {
		set("features", "", update.Features)
	}
	if update.IsActive != nil {
		set("is_active", "", *update.IsActive)
	}

	query := `UPDATE properties SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + propertyColumns

	row := r.pool.QueryRow(ctx, query, args...)
	property, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Property{}, ErrNotFound
		}
		return domain.Property{}, fmt.Errorf("failed to update property: %w", err)
	}
	return property, nil
}

func (r *postgresPropertyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var p domain.Property
	var status string
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Address, &p.City, &p.State,
		&p.ZipCode, &p.PropertyType, &status, &p.Bedrooms, &p.Bathrooms,
		&p.SquareFootage, &p.LotSize, &p.YearBuilt, &p.Images, &p.Amenities,
		&p.Features, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}
	p.Status = domain.Status(status)
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return p, nil
}
