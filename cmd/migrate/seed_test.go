package main

import (
	"context"
	"log/slog"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	mockRepo "inventory/internal/mocks/repository"
	mockSvc "inventory/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeps(t *testing.T) (*migrateDeps, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return &migrateDeps{
		Logger:   slog.New(slog.DiscardHandler),
		UserRepo: userRepo,
		Hasher:   hasher,
	}, userRepo, hasher
}

func TestSeedSuperAdmin(t *testing.T) {
	ctx := context.Background()
	deps, userRepo, hasher := createTestDeps(t)

	hasher.EXPECT().ValidatePasswordStrength("Str0ng-pass").Return(nil)
	userRepo.EXPECT().FindByUsername(ctx, "root").Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Hash("Str0ng-pass").Return("hashed", nil)
	userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "root" && u.Role == entity.RoleSuperAdmin && u.IsActive && u.PasswordHash == "hashed" && u.Version == 1
		})).
		Return(nil)

	require.NoError(t, seedSuperAdmin(ctx, deps, " root ", "Str0ng-pass"))
}

func TestSeedSuperAdmin_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("missing username", func(t *testing.T) {
		deps, _, _ := createTestDeps(t)
		assert.Error(t, seedSuperAdmin(ctx, deps, "", "pw"))
	})

	t.Run("missing password", func(t *testing.T) {
		deps, _, _ := createTestDeps(t)
		assert.ErrorContains(t, seedSuperAdmin(ctx, deps, "root", ""), superAdminPasswordEnv)
	})

	t.Run("weak password", func(t *testing.T) {
		deps, _, hasher := createTestDeps(t)
		hasher.EXPECT().ValidatePasswordStrength("pw").Return(domainerrors.ErrPasswordStrength)

		assert.ErrorIs(t, seedSuperAdmin(ctx, deps, "root", "pw"), domainerrors.ErrPasswordStrength)
	})

	t.Run("existing user", func(t *testing.T) {
		deps, userRepo, hasher := createTestDeps(t)
		hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		userRepo.EXPECT().FindByUsername(ctx, "root").Return(&entity.User{ID: uuid.New()}, nil)

		assert.ErrorContains(t, seedSuperAdmin(ctx, deps, "root", "Str0ng-pass"), "already exists")
	})
}
