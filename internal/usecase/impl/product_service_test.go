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
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     *productService
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	srv := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Logger:      slog.New(slog.DiscardHandler),
	}).(*productService)
	srv.now = func() time.Time { return fixedNow }

	return productServiceFixtures{
		service:     srv,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Title:    "Desk Lamp",
		Category: "Lighting",
		Brand:    "Lumen",
		Price:    decimal.RequireFromString("19.99"),
		Stock:    4,
	}
}

func TestProductService_Create_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	seller := entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}

	fx.userRepo.EXPECT().FindByID(ctx, seller.UserID).
		Return(&entity.User{ID: seller.UserID, Username: "shop", Role: entity.RoleSeller, IsActive: true}, nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.Create(ctx, seller, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, seller.UserID, product.OwnerID)
	assert.Equal(t, "shop", product.OwnerUsername)
	assert.True(t, product.IsActive)
	assert.Equal(t, fixedNow, product.CreatedAt)
	assert.Equal(t, "19.99", product.Price.StringFixed(2))
}

func TestProductService_Create_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("customer", func(t *testing.T) {
		fx := createTestProductService(t)
		_, err := fx.service.Create(ctx, customer(), validProductInput())
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("negative price", func(t *testing.T) {
		fx := createTestProductService(t)
		in := validProductInput()
		in.Price = decimal.NewFromInt(-1)

		_, err := fx.service.Create(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}, in)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("negative stock", func(t *testing.T) {
		fx := createTestProductService(t)
		in := validProductInput()
		in.Stock = -2

		_, err := fx.service.Create(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}, in)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("inactive owner", func(t *testing.T) {
		fx := createTestProductService(t)
		seller := entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}
		fx.userRepo.EXPECT().FindByID(ctx, seller.UserID).
			Return(&entity.User{ID: seller.UserID, Role: entity.RoleSeller, IsActive: false}, nil)

		_, err := fx.service.Create(ctx, seller, validProductInput())
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestProductService_GetPublic_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindPublicByID(ctx, id).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetPublic(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrCatalogProductNotFound)
}

func TestProductService_Mine(t *testing.T) {
	ctx := context.Background()

	t.Run("seller lists own", func(t *testing.T) {
		fx := createTestProductService(t)
		seller := entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}
		fx.productRepo.EXPECT().ListByOwner(ctx, seller.UserID).Return([]*entity.Product{{ID: uuid.New()}}, nil)

		products, err := fx.service.Mine(ctx, seller)
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("admin lists all", func(t *testing.T) {
		fx := createTestProductService(t)
		fx.productRepo.EXPECT().ListAll(ctx).Return([]*entity.Product{}, nil)

		_, err := fx.service.Mine(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin})
		require.NoError(t, err)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	seller := entity.Principal{UserID: uuid.New(), Role: entity.RoleSeller}

	tests := []struct {
		name    string
		product *entity.Product
		findErr error
		wantErr error
	}{
		{
			name:    "missing",
			findErr: repository.ErrProductNotFound,
			wantErr: domainerrors.ErrCatalogProductNotFound,
		},
		{
			name:    "inactive product",
			product: &entity.Product{OwnerID: seller.UserID, OwnerActive: true, IsActive: false},
			wantErr: domainerrors.ErrProductInactive,
		},
		{
			name:    "inactive owner",
			product: &entity.Product{OwnerID: seller.UserID, OwnerActive: false, IsActive: true},
			wantErr: domainerrors.ErrProductInactive,
		},
		{
			name:    "other seller's product",
			product: &entity.Product{OwnerID: uuid.New(), OwnerActive: true, IsActive: true},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "own product",
			product: &entity.Product{OwnerID: seller.UserID, OwnerActive: true, IsActive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			id := uuid.New()
			if tt.product != nil {
				tt.product.ID = id
			}

			fx.productRepo.EXPECT().FindByID(ctx, id).Return(tt.product, tt.findErr)
			if tt.wantErr == nil {
				fx.productRepo.EXPECT().Update(ctx, tt.product).Return(nil)
			}

			got, err := fx.service.Update(ctx, seller, id, validProductInput())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Desk Lamp", got.Title)
			assert.Equal(t, 4, got.Stock)
			assert.Equal(t, fixedNow, got.UpdatedAt)
		})
	}
}

func TestProductService_Delete_SoftDeletes(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	admin := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}
	product := &entity.Product{ID: uuid.New(), OwnerID: uuid.New(), OwnerActive: true, IsActive: true}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(p *entity.Product) bool { return !p.IsActive })).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, admin, product.ID))
}
