package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Version is the optimistic concurrency stamp.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status           string          `gorm:"type:varchar(20);not null"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PaidAt           *time.Time
	PaymentReference *string `gorm:"type:varchar(100)"`
	CustomerName     *string `gorm:"type:varchar(200)"`
	AddressLine1     *string `gorm:"type:varchar(300)"`
	City             *string `gorm:"type:varchar(100)"`
	Country          *string `gorm:"type:varchar(100)"`
	Phone            *string `gorm:"type:varchar(50)"`
	IdempotencyKey   *string `gorm:"type:varchar(100)"`
	Version          int     `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel mirrors the 'order_lines' table. (order_id, product_id) is the primary key,
// so an order can never hold two lines for the same product.
type OrderLineModel struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// SellerMetricRow is the scan target of the per-owner aggregate query.
type SellerMetricRow struct {
	SellerID       uuid.UUID
	TotalOrders    int64
	PaidOrders     int64
	PendingOrders  int64
	CanceledOrders int64
	TotalRevenue   decimal.Decimal
	PendingRevenue decimal.Decimal
	LastPaidAt     *time.Time
}
