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
	mockSvc "inventory/internal/mocks/service"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      *userService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       slog.New(slog.DiscardHandler),
	}).(*userService)
	srv.now = func() time.Time { return fixedNow }

	return userServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Signup_DefaultsToCustomer(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("s3cret-pass").Return(nil)
	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: " alice ", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.MinLevel, user.Level)
	assert.Equal(t, 1, user.Version)
	assert.True(t, user.IsActive)
}

func TestUserService_Signup_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("admin role", func(t *testing.T) {
		fx := createTestUserService(t)
		_, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "bob", Password: "x", Role: entity.RoleAdmin})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("weak password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.hasher.EXPECT().ValidatePasswordStrength("x").Return(domainerrors.ErrPasswordStrength)

		_, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "bob", Password: "x", Role: entity.RoleSeller})
		require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	})

	t.Run("taken username", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "bob", Password: "long-enough"})
		require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("unique constraint race", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUsernameTaken)

		_, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "bob", Password: "long-enough"})
		require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("hash failure", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost out of range"))

		_, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "bob", Password: "long-enough"})
		require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed", Role: entity.RoleSeller, IsActive: true}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateAccessToken(user.ID.String(), "Seller").Return("jwt", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "jwt", out.AccessToken)
		assert.Same(t, user, out.User)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "pw"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "bad"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive", func(t *testing.T) {
		fx := createTestUserService(t)
		inactive := *user
		inactive.IsActive = false
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&inactive, nil)
		fx.hasher.EXPECT().Check("pw", "hashed").Return(true)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw"})
		require.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	})
}
