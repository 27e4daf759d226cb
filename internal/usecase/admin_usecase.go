package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the SuperAdmin operations: metrics and staff management.
type AdminUsecase interface {
	SellerMetrics(ctx context.Context) ([]*entity.SellerMetric, error)
	ListStaff(ctx context.Context) ([]*entity.User, error)
	Deactivate(ctx context.Context, principal entity.Principal, userID uuid.UUID) error
	Activate(ctx context.Context, userID uuid.UUID) error
	Promote(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	Demote(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
