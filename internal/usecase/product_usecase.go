package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput defines the editable fields of a product.
type ProductInput struct {
	Title        string
	Category     string
	Brand        string
	Price        decimal.Decimal
	Stock        int
	ProductImage string
}

// ProductUsecase defines catalog browsing and management.
type ProductUsecase interface {
	ListPublic(ctx context.Context) ([]*entity.Product, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, principal entity.Principal, input *ProductInput) (*entity.Product, error)
	Mine(ctx context.Context, principal entity.Principal) ([]*entity.Product, error)
	Update(ctx context.Context, principal entity.Principal, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}
