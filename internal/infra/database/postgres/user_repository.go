package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gurohotvedt/cab230serverside/internal/domain/user"
)

// UserRepository implements user.Repository using PostgreSQL
type UserRepository struct {
	pool *Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByEmail returns the user with the given email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT email, hash FROM users WHERE email = $1`

	var u user.User
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &u, nil
}

// Create inserts a new user record
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) error {
	query := `INSERT INTO users (email, hash) VALUES ($1, $2)`

	if _, err := r.pool.Exec(ctx, query, email, passwordHash); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
