package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	mockRepo "inventory/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     *adminService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	srv := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		UserRepo:  userRepo,
		Logger:    slog.New(slog.DiscardHandler),
	}).(*adminService)
	srv.now = func() time.Time { return fixedNow }

	return adminServiceFixtures{
		service:     srv,
		txManager:   txManager,
		factory:     factory,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (f adminServiceFixtures) expectTx() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func superAdmin() entity.Principal {
	return entity.Principal{UserID: uuid.New(), Role: entity.RoleSuperAdmin}
}

func TestAdminService_SellerMetrics(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().AggregateByOwner(ctx).Return([]*entity.SellerMetric{{
		SellerID:       uuid.New(),
		TotalOrders:    3,
		PaidOrders:     2,
		PendingOrders:  1,
		TotalRevenue:   decimal.RequireFromString("50.00"),
		PendingRevenue: decimal.RequireFromString("15.00"),
	}}, nil)

	metrics, err := fx.service.SellerMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, int64(2), metrics[0].PaidOrders)
	assert.Equal(t, "50.00", metrics[0].TotalRevenue.StringFixed(2))
}

func TestAdminService_SellerMetrics_EmptyIsNotNil(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().AggregateByOwner(ctx).Return(nil, nil)

	metrics, err := fx.service.SellerMetrics(ctx)
	require.NoError(t, err)
	assert.NotNil(t, metrics)
	assert.Empty(t, metrics)
}

func TestAdminService_ListStaff(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ListByRoles(ctx, entity.Roles{entity.RoleAdmin, entity.RoleSeller}).
		Return([]*entity.User{{ID: uuid.New(), Role: entity.RoleSeller}}, nil)

	users, err := fx.service.ListStaff(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAdminService_Deactivate_Seller(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	actor := superAdmin()
	seller := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, IsActive: true, Version: 3}

	fx.expectTx()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.userRepo.EXPECT().Update(ctx, seller, 3).Return(nil)
	fx.productRepo.EXPECT().SetActiveByOwner(ctx, seller.ID, false).Return(nil)

	require.NoError(t, fx.service.Deactivate(ctx, actor, seller.ID))
	assert.False(t, seller.IsActive)
	require.NotNil(t, seller.DeactivatedBy)
	assert.Equal(t, actor.UserID, *seller.DeactivatedBy)
	assert.Equal(t, fixedNow, *seller.DeactivatedAt)
}

func TestAdminService_Deactivate_AlreadyInactiveIsNoop(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, IsActive: false}

	fx.expectTx()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)

	require.NoError(t, fx.service.Deactivate(ctx, superAdmin(), admin.ID))
}

func TestAdminService_Deactivate_LastSuperAdmin(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	target := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin, IsActive: true}

	fx.expectTx()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.userRepo.EXPECT().CountActiveByRole(ctx, entity.RoleSuperAdmin, target.ID).Return(int64(0), nil)

	err := fx.service.Deactivate(ctx, superAdmin(), target.ID)
	require.ErrorIs(t, err, domainerrors.ErrLastSuperAdmin)
	assert.True(t, target.IsActive)
}

func TestAdminService_Deactivate_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		fx := createTestAdminService(t)
		id := uuid.New()
		fx.expectTx()
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		require.ErrorIs(t, fx.service.Deactivate(ctx, superAdmin(), id), domainerrors.ErrUserNotFound)
	})

	t.Run("customer", func(t *testing.T) {
		fx := createTestAdminService(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer, IsActive: true}
		fx.expectTx()
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		require.ErrorIs(t, fx.service.Deactivate(ctx, superAdmin(), user.ID), domainerrors.ErrRoleNotManageable)
	})

	t.Run("version conflict", func(t *testing.T) {
		fx := createTestAdminService(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, IsActive: true, Version: 1}
		fx.expectTx()
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user, 1).Return(repository.ErrUserVersionConflict)

		require.ErrorIs(t, fx.service.Deactivate(ctx, superAdmin(), user.ID), domainerrors.ErrConflict)
	})
}

func TestAdminService_Activate(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	by := uuid.New()
	at := fixedNow.Add(-24 * time.Hour)
	seller := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, IsActive: false, DeactivatedAt: &at, DeactivatedBy: &by, Version: 2}

	fx.expectTx()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.userRepo.EXPECT().Update(ctx, seller, 2).Return(nil)
	fx.productRepo.EXPECT().SetActiveByOwner(ctx, seller.ID, true).Return(nil)

	require.NoError(t, fx.service.Activate(ctx, seller.ID))
	assert.True(t, seller.IsActive)
	assert.Nil(t, seller.DeactivatedAt)
	assert.Nil(t, seller.DeactivatedBy)
}

func TestAdminService_Activate_AlreadyActiveIsNoop(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	seller := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, IsActive: true, Version: 3}

	fx.expectTx()
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

	require.NoError(t, fx.service.Activate(ctx, seller.ID))
	assert.Equal(t, 3, seller.Version)
	fx.productRepo.AssertNotCalled(t, "SetActiveByOwner", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_PromoteDemote(t *testing.T) {
	ctx := context.Background()

	t.Run("promote", func(t *testing.T) {
		fx := createTestAdminService(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, IsActive: true, Level: 2, Version: 5}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user, 5).Return(nil)

		got, err := fx.service.Promote(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Level)
	})

	t.Run("demote stops at minimum", func(t *testing.T) {
		fx := createTestAdminService(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, IsActive: true, Level: entity.MinLevel, Version: 1}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user, 1).Return(nil)

		got, err := fx.service.Demote(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.MinLevel, got.Level)
	})

	t.Run("inactive", func(t *testing.T) {
		fx := createTestAdminService(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleSeller, IsActive: false, Level: 2}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.Promote(ctx, user.ID)
		require.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})

	t.Run("super admin is not ranked", func(t *testing.T) {
		fx := createTestAdminService(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin, IsActive: true, Level: 2}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.Demote(ctx, user.ID)
		require.ErrorIs(t, err, domainerrors.ErrRoleNotManageable)
	})
}
