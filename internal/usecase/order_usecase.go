// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitOrderInput carries a cart submission. Callers may send the lines under
// either field; the first non-empty one is used.
type SubmitOrderInput struct {
	LineItems      []entity.CartLine
	CartItems      []entity.CartLine
	IdempotencyKey string
}

// Lines returns the first non-empty of LineItems and CartItems.
func (in *SubmitOrderInput) Lines() []entity.CartLine {
	if len(in.LineItems) > 0 {
		return in.LineItems
	}

	return in.CartItems
}

// PayOrderInput carries the checkout fields and an optional payment reference.
type PayOrderInput struct {
	Checkout         entity.CheckoutDetails
	PaymentReference string
}

// --- Output DTOs ---

// SubmitOrderOutput returns the order and whether this call created it.
// Created is false when an idempotent replay returned an existing order.
type SubmitOrderOutput struct {
	Order   *entity.Order
	Created bool
}

// OrderUsecase defines the order lifecycle and visibility operations.
// Every call receives the authenticated principal explicitly.
type OrderUsecase interface {
	Submit(ctx context.Context, principal entity.Principal, input *SubmitOrderInput) (*SubmitOrderOutput, error)
	Pay(ctx context.Context, principal entity.Principal, orderID uuid.UUID, input *PayOrderInput) (*entity.Order, error)
	Cancel(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, principal entity.Principal) ([]*entity.Order, error)
	Get(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error)
	ReceiptQR(ctx context.Context, principal entity.Principal, orderID uuid.UUID) ([]byte, error)
}
