package repository

import (
	"context"
	"errors"
	"fmt"

	"realty-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresUserRepository implements UserRepository on a pgx pool. Username
// uniqueness is enforced by the schema's unique index rather than a separate
// existence check, so concurrent creates cannot race past each other.
type postgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a Postgres-backed user repository.
func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var user domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username,
	).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepository) Create(ctx context.Context, insert domain.UserInsert) (domain.User, error) {
	user := domain.NewUser(insert)

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.Password,
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
