package repository

import (
	"context"
	"errors"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence for the catalog.
type ProductRepository interface {
	// FindByIDs loads the products in one batch, including inactive ones.
	// Missing ids are simply absent from the map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error)

	// FindByID retrieves a product regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListPublic returns active products of active owners.
	ListPublic(ctx context.Context) ([]*entity.Product, error)

	// FindPublicByID returns the product only when it and its owner are active.
	FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListByOwner returns every product of one owner.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	// ListAll returns every product.
	ListAll(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update writes the mutable product fields.
	Update(ctx context.Context, product *entity.Product) error

	// SetActiveByOwner flips the active flag of every product of an owner.
	SetActiveByOwner(ctx context.Context, ownerID uuid.UUID, active bool) error
}
