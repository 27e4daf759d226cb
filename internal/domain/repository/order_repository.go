package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderVersionConflict is returned when a status update lost an optimistic concurrency race.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrDuplicateIdempotencyKey is returned when the owner already used the idempotency key.
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")
)

// OrderRepository defines persistence for orders and their lines.
type OrderRepository interface {
	// Create persists the order with all of its lines.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its lines.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIdempotencyKey retrieves the owner's order created with the key.
	FindByIdempotencyKey(ctx context.Context, ownerID uuid.UUID, key string) (*entity.Order, error)

	// ListVisible returns the orders inside the visibility, newest first.
	ListVisible(ctx context.Context, visibility entity.Visibility) ([]*entity.Order, error)

	// UpdateStatus writes the lifecycle fields if the stored version still equals
	// expectedVersion, and bumps order.Version on success.
	UpdateStatus(ctx context.Context, order *entity.Order, expectedVersion int) error

	// AggregateByOwner computes the per-owner metrics in a single statement.
	AggregateByOwner(ctx context.Context) ([]*entity.SellerMetric, error)
}
