package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title        string          `gorm:"type:varchar(200);not null"`
	Category     string          `gorm:"type:varchar(100)"`
	Brand        string          `gorm:"type:varchar(100)"`
	Price        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Stock        int             `gorm:"not null"`
	ProductImage string          `gorm:"type:varchar(500)"`
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	IsActive     bool            `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductWithOwner is a product row joined with the owner columns it is filtered on.
type ProductWithOwner struct {
	ProductModel  `gorm:"embedded"`
	OwnerUsername string
	OwnerActive   bool
}
