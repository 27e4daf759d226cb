// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the unique username constraint is violated.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserVersionConflict is returned when an update lost an optimistic concurrency race.
	ErrUserVersionConflict = errors.New("user version conflict")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// ListByRoles returns the users holding any of the roles, newest first.
	ListByRoles(ctx context.Context, roles entity.Roles) ([]*entity.User, error)

	// CountActiveByRole counts active users of a role, excluding one id.
	CountActiveByRole(ctx context.Context, role entity.Role, excludeID uuid.UUID) (int64, error)

	// Update writes the user if its stored version still equals expectedVersion,
	// and bumps user.Version on success.
	Update(ctx context.Context, user *entity.User, expectedVersion int) error
}
