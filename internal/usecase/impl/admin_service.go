package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// staffRoles are the roles listed and ranked by the account administration endpoints.
var staffRoles = entity.Roles{entity.RoleAdmin, entity.RoleSeller}

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
	now       func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SellerMetrics returns one aggregate row per order owner.
func (srv *adminService) SellerMetrics(ctx context.Context) ([]*entity.SellerMetric, error) {
	metrics, err := srv.orderRepo.AggregateByOwner(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate seller metrics")
	}

	if metrics == nil {
		metrics = []*entity.SellerMetric{}
	}

	return metrics, nil
}

// ListStaff returns Admin and Seller accounts, newest first.
func (srv *adminService) ListStaff(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListByRoles(ctx, staffRoles)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	return users, nil
}

// Deactivate disables an account and hides its products.
func (srv *adminService) Deactivate(ctx context.Context, principal entity.Principal, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if !user.Role.IsStaff() && user.Role != entity.RoleSuperAdmin {
			return domainerrors.ErrRoleNotManageable
		}

		if !user.IsActive {
			return nil
		}

		if user.Role == entity.RoleSuperAdmin {
			others, err := userRepo.CountActiveByRole(ctx, entity.RoleSuperAdmin, user.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count active super admins")
			}
			if others == 0 {
				return domainerrors.ErrLastSuperAdmin
			}
		}

		expectedVersion := user.Version
		user.Deactivate(principal.UserID, srv.now().UTC())

		if err := saveUser(ctx, userRepo, user, expectedVersion); err != nil {
			return err
		}

		if err := repoFactory.NewProductRepository().SetActiveByOwner(ctx, user.ID, false); err != nil {
			return errors.Wrap(err, "failed to deactivate owned products")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User deactivated", slog.String("userID", userID.String()), slog.String("by", principal.UserID.String()))

	return nil
}

// Activate re-enables an account and its products.
func (srv *adminService) Activate(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if user.IsActive {
			return nil
		}

		expectedVersion := user.Version
		user.Activate(srv.now().UTC())

		if err := saveUser(ctx, userRepo, user, expectedVersion); err != nil {
			return err
		}

		if err := repoFactory.NewProductRepository().SetActiveByOwner(ctx, user.ID, true); err != nil {
			return errors.Wrap(err, "failed to activate owned products")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User activated", slog.String("userID", userID.String()))

	return nil
}

// Promote raises the level of an active Admin or Seller.
func (srv *adminService) Promote(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.rank(ctx, userID, (*entity.User).Promote)
}

// Demote lowers the level of an active Admin or Seller, never below the minimum.
func (srv *adminService) Demote(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return srv.rank(ctx, userID, (*entity.User).Demote)
}

func (srv *adminService) rank(ctx context.Context, userID uuid.UUID, change func(*entity.User, time.Time)) (*entity.User, error) {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	if !user.Role.IsStaff() {
		return nil, domainerrors.ErrRoleNotManageable
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	expectedVersion := user.Version
	change(user, srv.now().UTC())

	if err := saveUser(ctx, srv.userRepo, user, expectedVersion); err != nil {
		return nil, err
	}

	return user, nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func saveUser(ctx context.Context, userRepo repository.UserRepository, user *entity.User, expectedVersion int) error {
	err := userRepo.Update(ctx, user, expectedVersion)
	if errors.Is(err, repository.ErrUserVersionConflict) {
		return domainerrors.ErrConflict
	}
	if err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	return nil
}
