package postgres

import (
	"context"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{
	"id", "title", "category", "brand", "price", "stock", "product_image",
	"owner_id", "is_active", "created_at", "updated_at", "owner_username", "owner_active",
}

// productSelect matches the owner join; the select list is left to the query builder.
func productSelect(rest string) string {
	return `^SELECT .+ ` + q(`FROM "products" INNER JOIN "users" ON "users"."id" = "products"."owner_id"`+rest)
}

func TestProductRepository_FindByIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)

	p1, p2, owner := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(productSelect(` WHERE "products"."id" IN ($1,$2) ORDER BY "products"."created_at" DESC`)).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(p1.String(), "Mug", "Kitchen", "Acme", "10.00", 3, "", owner.String(), true, now, now, "seller", true).
			AddRow(p2.String(), "Cap", "Apparel", "Acme", "5.00", 0, "", owner.String(), false, now, now, "seller", true))

	products, err := repo.FindByIDs(context.Background(), []uuid.UUID{p1, p2})
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.True(t, decimal.RequireFromString("10.00").Equal(products[p1].Price))
	assert.True(t, products[p1].IsActive)
	assert.False(t, products[p2].IsActive)
	assert.Equal(t, owner, products[p2].OwnerID)
	assert.Equal(t, "seller", products[p1].OwnerUsername)
}

func TestProductRepository_FindByIDs_Empty(t *testing.T) {
	db, _ := setupMockDB(t)
	repo := NewProductRepository(db)

	products, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_FindPublicByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(productSelect(` WHERE "products"."id" = $1 AND "products"."is_active" = $2 AND "users"."is_active" = $3 ORDER BY "products"."created_at" DESC LIMIT $4`)).
		WillReturnRows(sqlmock.NewRows(productColumns))

	product, err := repo.FindPublicByID(context.Background(), uuid.New())
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ListPublic(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)
	now := time.Now()

	mock.ExpectQuery(productSelect(` WHERE "products"."is_active" = $1 AND "users"."is_active" = $2 ORDER BY "products"."created_at" DESC`)).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(uuid.NewString(), "Mug", "", "", "1.50", 1, "", uuid.NewString(), true, now, now, "s", true))

	products, err := repo.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].IsPubliclyVisible())
}

func TestProductRepository_SelectsOwnerColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)
	owner := uuid.New()

	mock.ExpectQuery(q(`"users"."username" AS "owner_username"`) + `.+` + q(`"users"."is_active" AS "owner_active"`)).
		WillReturnRows(sqlmock.NewRows(productColumns))

	products, err := repo.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(q(`UPDATE "products" SET`)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_SetActiveByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(q(`UPDATE "products" SET "is_active"=$1,"updated_at"=$2 WHERE "products"."owner_id" = $3`)).
		WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, repo.SetActiveByOwner(context.Background(), uuid.New(), false))
}
