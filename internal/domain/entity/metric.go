package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellerMetric summarizes the orders grouped under one owner.
type SellerMetric struct {
	SellerID       uuid.UUID
	TotalOrders    int64
	PaidOrders     int64
	PendingOrders  int64
	CanceledOrders int64
	TotalRevenue   decimal.Decimal // Sum over paid orders.
	PendingRevenue decimal.Decimal // Sum over pending orders.
	LastPaidAt     *time.Time
}
