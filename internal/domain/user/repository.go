package user

import "context"

// Repository defines the interface for user credential access
type Repository interface {
	// FindByEmail returns the user with the given email, or ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create inserts a new user record
	Create(ctx context.Context, email, passwordHash string) error
}
