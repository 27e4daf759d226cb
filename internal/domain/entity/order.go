package entity

import (
	"time"

	domainerrors "inventory/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pending"
	OrderStatusPaid     OrderStatus = "Paid"
	OrderStatusCanceled OrderStatus = "Canceled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusPaid || s == OrderStatusCanceled
}

// PaymentReferencePrefix prefixes generated payment references.
const PaymentReferencePrefix = "PAY-"

// MaxLineQuantity caps the quantity of a single order line, before and after
// duplicate lines are merged.
const MaxLineQuantity = 1_000_000

// maxOrderTotal is the largest amount a numeric(18,2) column holds.
var maxOrderTotal = decimal.New(1, 16).Sub(decimal.New(1, -2))

// CartLine is one requested product/quantity pair as submitted by a caller.
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderLine is a product line within an order with its price snapshot.
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal // Catalog price at creation time.
}

// Subtotal returns UnitPrice × Quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CheckoutDetails holds the shipping and contact fields captured on payment.
type CheckoutDetails struct {
	CustomerName string
	AddressLine1 string
	City         string
	Country      string
	Phone        string
}

// Order (a "bill") is a customer's purchase request.
type Order struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID // Placing user, immutable.
	CreatedAt        time.Time
	Status           OrderStatus
	TotalAmount      decimal.Decimal // Always the sum of line subtotals.
	Lines            []OrderLine     // Non-empty, one line per product.
	PaidAt           *time.Time
	PaymentReference *string
	Checkout         *CheckoutDetails // Set only on payment.
	IdempotencyKey   string           // Optional client supplied key, unique per owner.
	Version          int              // Optimistic concurrency stamp.
}

// ConsolidateCart merges lines referencing the same product by summing their
// quantities. The result keeps the order in which each product first appeared.
func ConsolidateCart(lines []CartLine) []CartLine {
	index := make(map[uuid.UUID]int, len(lines))
	merged := make([]CartLine, 0, len(lines))

	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}

		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	return merged
}

// ProductIDs returns the distinct product ids of the cart in first-appearance order.
func ProductIDs(lines []CartLine) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))

	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}

		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	return ids
}

// NewOrder builds a pending order from a cart. The catalog must contain every
// product found by a batch lookup of the cart's product ids. Every product is
// checked before any quantity, and nothing is produced unless the whole cart is valid.
func NewOrder(ownerID uuid.UUID, cart []CartLine, catalog map[uuid.UUID]*Product, now time.Time) (*Order, error) {
	if len(cart) == 0 {
		return nil, domainerrors.ErrEmptyItems
	}

	consolidated := ConsolidateCart(cart)

	for _, line := range consolidated {
		if !catalog[line.ProductID].IsOrderable() {
			return nil, domainerrors.ErrProductNotFound.WithMessagef("Product %s not found.", line.ProductID)
		}
	}

	for _, line := range cart {
		if line.Quantity > MaxLineQuantity || line.Quantity < -MaxLineQuantity {
			return nil, domainerrors.ErrInvalidQuantity
		}
	}

	lines := make([]OrderLine, 0, len(consolidated))
	total := decimal.Zero

	for _, line := range consolidated {
		if line.Quantity <= 0 || line.Quantity > MaxLineQuantity {
			return nil, domainerrors.ErrInvalidQuantity
		}

		orderLine := OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: catalog[line.ProductID].Price,
		}
		total = total.Add(orderLine.Subtotal())
		lines = append(lines, orderLine)
	}

	if total.GreaterThan(maxOrderTotal) {
		return nil, domainerrors.ErrInvalidQuantity
	}

	return &Order{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		CreatedAt:   now.UTC(),
		Status:      OrderStatusPending,
		TotalAmount: total,
		Lines:       lines,
		Version:     1,
	}, nil
}

// IsOwnedBy reports whether the user placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.OwnerID == userID
}

// ProductIDs returns the ids referenced by the order lines.
func (o *Order) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(o.Lines))
	for i, line := range o.Lines {
		ids[i] = line.ProductID
	}

	return ids
}

// Pay moves a pending order to Paid. An empty reference is replaced by a generated one.
func (o *Order) Pay(details CheckoutDetails, reference string, now time.Time) error {
	switch o.Status {
	case OrderStatusPaid:
		return domainerrors.ErrAlreadyPaid
	case OrderStatusCanceled:
		return domainerrors.ErrOrderCanceled
	}

	if reference == "" {
		reference = NewPaymentReference()
	}

	paidAt := now.UTC()
	o.Status = OrderStatusPaid
	o.PaidAt = &paidAt
	o.PaymentReference = &reference
	o.Checkout = &details

	return nil
}

// Cancel moves a pending order to Canceled.
func (o *Order) Cancel() error {
	switch o.Status {
	case OrderStatusPaid:
		return domainerrors.ErrPaidImmutable
	case OrderStatusCanceled:
		return domainerrors.ErrOrderCanceled
	}

	o.Status = OrderStatusCanceled

	return nil
}

// NewPaymentReference returns a fresh unique payment reference.
func NewPaymentReference() string {
	return PaymentReferencePrefix + uuid.NewString()
}
