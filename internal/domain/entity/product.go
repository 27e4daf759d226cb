package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry owned by a seller.
type Product struct {
	ID            uuid.UUID
	Title         string
	Category      string
	Brand         string
	Price         decimal.Decimal
	Stock         int
	ProductImage  string
	OwnerID       uuid.UUID
	OwnerUsername string // Read-only, joined from the owner.
	OwnerActive   bool   // Read-only, joined from the owner.
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOrderable reports whether the product may be placed on a new order.
func (p *Product) IsOrderable() bool {
	return p != nil && p.IsActive
}

// IsPubliclyVisible reports whether the product appears in the public catalog.
func (p *Product) IsPubliclyVisible() bool {
	return p.IsActive && p.OwnerActive
}
