// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a dashboard account does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for dashboard account
// persistence. The application layer depends on this interface, not the
// concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns all accounts ordered by creation time.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new account.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing account.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes an account permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
