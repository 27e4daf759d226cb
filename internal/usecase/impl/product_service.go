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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPublic returns the active products of active owners.
func (srv *productService) ListPublic(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListPublic(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetPublic returns a product only if it and its owner are active.
func (srv *productService) GetPublic(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindPublicByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrCatalogProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// Create adds a product owned by the requester.
func (srv *productService) Create(ctx context.Context, principal entity.Principal, input *usecase.ProductInput) (*entity.Product, error) {
	if !principal.Role.CanManageProducts() {
		return nil, domainerrors.ErrForbidden
	}

	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	owner, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrForbidden
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product owner")
	}
	if !owner.IsActive {
		return nil, domainerrors.ErrForbidden.WithDetails("owner account is inactive")
	}

	now := srv.now().UTC()
	product := &entity.Product{
		ID:            uuid.New(),
		Title:         input.Title,
		Category:      input.Category,
		Brand:         input.Brand,
		Price:         input.Price,
		Stock:         input.Stock,
		ProductImage:  input.ProductImage,
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
		OwnerActive:   true,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID.String()), slog.String("ownerID", owner.ID.String()))

	return product, nil
}

// Mine lists the products a seller owns. Admins and SuperAdmins see the whole catalog.
func (srv *productService) Mine(ctx context.Context, principal entity.Principal) ([]*entity.Product, error) {
	var (
		products []*entity.Product
		err      error
	)

	switch principal.Role {
	case entity.RoleSeller:
		products, err = srv.productRepo.ListByOwner(ctx, principal.UserID)
	case entity.RoleAdmin, entity.RoleSuperAdmin:
		products, err = srv.productRepo.ListAll(ctx)
	default:
		return nil, domainerrors.ErrForbidden
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Update replaces the editable fields of an active product.
func (srv *productService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.loadManageable(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	product.Title = input.Title
	product.Category = input.Category
	product.Brand = input.Brand
	product.Price = input.Price
	product.Stock = input.Stock
	product.ProductImage = input.ProductImage
	product.UpdatedAt = srv.now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete soft-deletes a product by clearing its active flag.
func (srv *productService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	product, err := srv.loadManageable(ctx, principal, id)
	if err != nil {
		return err
	}

	product.IsActive = false
	product.UpdatedAt = srv.now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return errors.Wrap(err, "failed to deactivate product")
	}

	srv.log(ctx).Info("Product deactivated", slog.String("productID", product.ID.String()))

	return nil
}

// loadManageable returns the product if the requester may change it.
func (srv *productService) loadManageable(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Product, error) {
	if !principal.Role.CanManageProducts() {
		return nil, domainerrors.ErrForbidden
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrCatalogProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.IsActive || !product.OwnerActive {
		return nil, domainerrors.ErrProductInactive
	}

	if principal.Role == entity.RoleSeller && product.OwnerID != principal.UserID {
		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WithDetails("price must be >= 0")
	}
	if input.Stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock must be >= 0")
	}

	return nil
}
