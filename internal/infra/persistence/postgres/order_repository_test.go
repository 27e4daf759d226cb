package postgres

import (
	"context"
	"errors"
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

var orderColumns = []string{
	"id", "user_id", "status", "total_amount", "paid_at", "payment_reference",
	"customer_name", "address_line1", "city", "country", "phone",
	"idempotency_key", "version", "created_at", "updated_at",
}

func newPendingOrder() *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		CreatedAt:   time.Now().UTC(),
		Status:      entity.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("55.00"),
		Lines: []entity.OrderLine{
			{ProductID: uuid.New(), Quantity: 5, UnitPrice: decimal.RequireFromString("10.00")},
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
		Version: 1,
	}
}

func TestOrderRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)
	order := newPendingOrder()

	mock.ExpectExec(q(`INSERT INTO "orders"`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(`INSERT INTO "order_lines"`)).WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Create(context.Background(), order))
}

func TestOrderRepository_Create_DuplicateIdempotencyKey(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)
	order := newPendingOrder()
	order.IdempotencyKey = "key-1"

	mock.ExpectExec(q(`INSERT INTO "orders"`)).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_orders_user_idempotency_key" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), order)
	assert.ErrorIs(t, err, repository.ErrDuplicateIdempotencyKey)
}

func TestOrderRepository_FindByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	id, owner, product := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(q(`SELECT * FROM "orders" WHERE "orders"."id" = $1 ORDER BY "orders"."id" LIMIT $2`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
			id.String(), owner.String(), "Paid", "20.00", now, "PAY-1",
			"Ann", "1 Main St", "Oslo", "NO", "123",
			nil, 2, now, now,
		))
	mock.ExpectQuery(q(`SELECT * FROM "order_lines" WHERE "order_lines"."order_id" = $1 ORDER BY "order_lines"."position"`)).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "product_id", "position", "quantity", "unit_price"}).
			AddRow(id.String(), product.String(), 0, 2, "10.00"))

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, order.ID)
	assert.Equal(t, owner, order.OwnerID)
	assert.Equal(t, entity.OrderStatusPaid, order.Status)
	assert.Equal(t, 2, order.Version)
	assert.Equal(t, "PAY-1", *order.PaymentReference)
	require.NotNil(t, order.Checkout)
	assert.Equal(t, "Oslo", order.Checkout.City)
	assert.Empty(t, order.IdempotencyKey)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, product, order.Lines[0].ProductID)
	assert.True(t, decimal.RequireFromString("10.00").Equal(order.Lines[0].UnitPrice))
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(q(`SELECT * FROM "orders" WHERE "orders"."id" = $1 ORDER BY "orders"."id" LIMIT $2`)).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	order, err := repo.FindByID(context.Background(), uuid.New())
	assert.Nil(t, order)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_ListVisible_Scopes(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name  string
		scope entity.VisibilityScope
		sql   string
	}{
		{"all", entity.ScopeAll, `^` + q(`SELECT * FROM "orders" ORDER BY "orders"."created_at" DESC`)},
		{
			"product owner", entity.ScopeProductOwner,
			q(`SELECT * FROM "orders" WHERE EXISTS (SELECT `) + `.+` +
				q(`FROM "order_lines" INNER JOIN "products" ON "products"."id" = "order_lines"."product_id" `+
					`WHERE "order_lines"."order_id" = "orders"."id" AND "products"."owner_id" = $1) ORDER BY "orders"."created_at" DESC`),
		},
		{"order owner", entity.ScopeOrderOwner, q(`SELECT * FROM "orders" WHERE "orders"."user_id" = $1 ORDER BY "orders"."created_at" DESC`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewOrderRepository(db)

			mock.ExpectQuery(tt.sql).WillReturnRows(sqlmock.NewRows(orderColumns))

			orders, err := repo.ListVisible(context.Background(), entity.Visibility{Scope: tt.scope, UserID: userID})
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	t.Run("bumps version", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewOrderRepository(db)
		order := newPendingOrder()
		require.NoError(t, order.Pay(entity.CheckoutDetails{CustomerName: "Ann"}, "REF", time.Now()))

		mock.ExpectExec(q(`UPDATE "orders" SET`) + `.+` + q(`WHERE "orders"."id" = $11 AND "orders"."version" = $12`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), order, 1))
		assert.Equal(t, 2, order.Version)
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewOrderRepository(db)
		order := newPendingOrder()
		require.NoError(t, order.Cancel())

		mock.ExpectExec(q(`UPDATE "orders" SET`)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), order, 1)
		assert.ErrorIs(t, err, repository.ErrOrderVersionConflict)
		assert.Equal(t, 1, order.Version)
	})
}

func TestOrderRepository_AggregateByOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrderRepository(db)

	seller := uuid.New()
	lastPaid := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`^` + q(`SELECT user_id AS seller_id, COUNT(*) AS total_orders, `+
		`COUNT(*) FILTER (WHERE status = $1) AS paid_orders, `+
		`COUNT(*) FILTER (WHERE status = $2) AS pending_orders, `+
		`COUNT(*) FILTER (WHERE status = $3) AS canceled_orders, `+
		`COALESCE(SUM(total_amount) FILTER (WHERE status = $4), 0) AS total_revenue, `+
		`COALESCE(SUM(total_amount) FILTER (WHERE status = $5), 0) AS pending_revenue, `+
		`MAX(paid_at) FILTER (WHERE status = $6) AS last_paid_at `+
		`FROM orders GROUP BY user_id ORDER BY user_id`) + `$`).
		WithArgs("Paid", "Pending", "Canceled", "Paid", "Pending", "Paid").
		WillReturnRows(sqlmock.NewRows([]string{
			"seller_id", "total_orders", "paid_orders", "pending_orders", "canceled_orders",
			"total_revenue", "pending_revenue", "last_paid_at",
		}).AddRow(seller.String(), 3, 2, 1, 0, "50.00", "15.00", lastPaid))

	metrics, err := repo.AggregateByOwner(context.Background())
	require.NoError(t, err)
	require.Len(t, metrics, 1)

	m := metrics[0]
	assert.Equal(t, seller, m.SellerID)
	assert.EqualValues(t, 3, m.TotalOrders)
	assert.EqualValues(t, 2, m.PaidOrders)
	assert.EqualValues(t, 1, m.PendingOrders)
	assert.EqualValues(t, 0, m.CanceledOrders)
	assert.True(t, decimal.RequireFromString("50.00").Equal(m.TotalRevenue))
	assert.True(t, decimal.RequireFromString("15.00").Equal(m.PendingRevenue))
	assert.Equal(t, lastPaid, *m.LastPaidAt)
}
