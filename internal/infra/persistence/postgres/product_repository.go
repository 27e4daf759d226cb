package postgres

import (
	"context"
	"database/sql/driver"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"
	"inventory/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	q *query.Query
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		q: query.Use(db),
	}
}

// findWithOwner loads products joined with the owner's username and active flag, newest first.
func (repo *productRepository) findWithOwner(ctx context.Context, limit int, conds ...gen.Condition) ([]*model.ProductWithOwner, error) {
	p, u := repo.q.ProductModel, repo.q.UserModel

	do := p.WithContext(ctx).
		Select(p.ALL, u.Username.As("owner_username"), u.IsActive.As("owner_active")).
		Join(u, u.ID.EqCol(p.OwnerID)).
		Where(conds...).
		Order(p.CreatedAt.Desc())
	if limit > 0 {
		do = do.Limit(limit)
	}

	var rows []*model.ProductWithOwner
	if err := do.Scan(&rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// FindByIDs loads the products in one batch, including inactive ones.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	values := make([]driver.Valuer, len(ids))
	for i, id := range ids {
		values[i] = id
	}

	rows, err := repo.findWithOwner(ctx, 0, repo.q.ProductModel.ID.In(values...))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	for _, row := range rows {
		products[row.ID] = toProductDomain(row)
	}

	return products, nil
}

// FindByID retrieves a product regardless of its active flag.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.first(ctx, repo.q.ProductModel.ID.Eq(id))
}

// FindPublicByID returns the product only when it and its owner are active.
func (repo *productRepository) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, u := repo.q.ProductModel, repo.q.UserModel

	return repo.first(ctx, p.ID.Eq(id), p.IsActive.Is(true), u.IsActive.Is(true))
}

func (repo *productRepository) first(ctx context.Context, conds ...gen.Condition) (*entity.Product, error) {
	rows, err := repo.findWithOwner(ctx, 1, conds...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}
	if len(rows) == 0 {
		return nil, repository.ErrProductNotFound
	}

	return toProductDomain(rows[0]), nil
}

// ListPublic returns active products of active owners.
func (repo *productRepository) ListPublic(ctx context.Context) ([]*entity.Product, error) {
	p, u := repo.q.ProductModel, repo.q.UserModel

	return repo.list(ctx, p.IsActive.Is(true), u.IsActive.Is(true))
}

// ListByOwner returns every product of one owner.
func (repo *productRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	return repo.list(ctx, repo.q.ProductModel.OwnerID.Eq(ownerID))
}

// ListAll returns every product.
func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.list(ctx)
}

func (repo *productRepository) list(ctx context.Context, conds ...gen.Condition) ([]*entity.Product, error) {
	rows, err := repo.findWithOwner(ctx, 0, conds...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, len(rows))
	for i, row := range rows {
		products[i] = toProductDomain(row)
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.q.ProductModel.WithContext(ctx).Create(productM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("price and stock must be >= 0")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update writes the mutable product fields.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	now := time.Now().UTC()

	result, err := repo.q.ProductModel.WithContext(ctx).
		Where(repo.q.ProductModel.ID.Eq(product.ID)).
		Updates(map[string]any{
			"title":         product.Title,
			"category":      product.Category,
			"brand":         product.Brand,
			"price":         product.Price,
			"stock":         product.Stock,
			"product_image": product.ProductImage,
			"is_active":     product.IsActive,
			"updated_at":    now,
		})
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("price and stock must be >= 0")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = now

	return nil
}

// SetActiveByOwner flips the active flag of every product of an owner.
func (repo *productRepository) SetActiveByOwner(ctx context.Context, ownerID uuid.UUID, active bool) error {
	if _, err := repo.q.ProductModel.WithContext(ctx).
		Where(repo.q.ProductModel.OwnerID.Eq(ownerID)).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update products of owner")
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductWithOwner) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Title:         data.Title,
		Category:      data.Category,
		Brand:         data.Brand,
		Price:         data.Price,
		Stock:         data.Stock,
		ProductImage:  data.ProductImage,
		OwnerID:       data.OwnerID,
		OwnerUsername: data.OwnerUsername,
		OwnerActive:   data.OwnerActive,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:           data.ID,
		Title:        data.Title,
		Category:     data.Category,
		Brand:        data.Brand,
		Price:        data.Price,
		Stock:        data.Stock,
		ProductImage: data.ProductImage,
		OwnerID:      data.OwnerID,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
