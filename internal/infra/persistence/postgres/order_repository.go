package postgres

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"
	"inventory/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

const sellerMetricsQuery = `SELECT
	user_id AS seller_id,
	COUNT(*) AS total_orders,
	COUNT(*) FILTER (WHERE status = @paid) AS paid_orders,
	COUNT(*) FILTER (WHERE status = @pending) AS pending_orders,
	COUNT(*) FILTER (WHERE status = @canceled) AS canceled_orders,
	COALESCE(SUM(total_amount) FILTER (WHERE status = @paid), 0) AS total_revenue,
	COALESCE(SUM(total_amount) FILTER (WHERE status = @pending), 0) AS pending_revenue,
	MAX(paid_at) FILTER (WHERE status = @paid) AS last_paid_at
FROM orders
GROUP BY user_id
ORDER BY user_id`

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	q *query.Query
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		q: query.Use(db),
	}
}

func (repo *orderRepository) orderedLines() field.RelationField {
	return repo.q.OrderModel.Lines.Order(repo.q.OrderLineModel.Position)
}

// Create persists the order row followed by its lines. Callers run it inside a transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.q.OrderModel.WithContext(ctx).Omit(field.AssociationFields).Create(orderM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateIdempotencyKey
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	lines := make([]*model.OrderLineModel, len(orderM.Lines))
	for i := range orderM.Lines {
		lines[i] = &orderM.Lines[i]
	}

	if err := repo.q.OrderLineModel.WithContext(ctx).Create(lines...); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order lines")
	}

	return nil
}

// FindByID retrieves an order with its lines.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	orderM, err := repo.q.OrderModel.WithContext(ctx).
		Preload(repo.orderedLines()).
		Where(repo.q.OrderModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(orderM), nil
}

// FindByIdempotencyKey retrieves the owner's order created with the key.
func (repo *orderRepository) FindByIdempotencyKey(ctx context.Context, ownerID uuid.UUID, key string) (*entity.Order, error) {
	o := repo.q.OrderModel

	orderM, err := o.WithContext(ctx).
		Preload(repo.orderedLines()).
		Where(o.UserID.Eq(ownerID), o.IdempotencyKey.Eq(key)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by idempotency key")
	}

	return toOrderDomain(orderM), nil
}

// ListVisible returns the orders inside the visibility, newest first.
func (repo *orderRepository) ListVisible(ctx context.Context, visibility entity.Visibility) ([]*entity.Order, error) {
	o, l, p := repo.q.OrderModel, repo.q.OrderLineModel, repo.q.ProductModel

	do := o.WithContext(ctx).Preload(repo.orderedLines())

	switch visibility.Scope {
	case entity.ScopeAll:
	case entity.ScopeProductOwner:
		do = do.Where(gen.Exists(l.WithContext(ctx).
			Select(l.OrderID).
			Join(p, p.ID.EqCol(l.ProductID)).
			Where(l.OrderID.EqCol(o.ID), p.OwnerID.Eq(visibility.UserID))))
	default:
		do = do.Where(o.UserID.Eq(visibility.UserID))
	}

	orderModels, err := do.Order(o.CreatedAt.Desc()).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, len(orderModels))
	for i, orderM := range orderModels {
		orders[i] = toOrderDomain(orderM)
	}

	return orders, nil
}

// UpdateStatus writes the lifecycle fields guarded by the version stamp.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order, expectedVersion int) error {
	o := repo.q.OrderModel
	orderM := fromOrderDomain(order)

	result, err := o.WithContext(ctx).
		Where(o.ID.Eq(order.ID), o.Version.Eq(expectedVersion)).
		Updates(map[string]any{
			"status":            orderM.Status,
			"paid_at":           orderM.PaidAt,
			"payment_reference": orderM.PaymentReference,
			"customer_name":     orderM.CustomerName,
			"address_line1":     orderM.AddressLine1,
			"city":              orderM.City,
			"country":           orderM.Country,
			"phone":             orderM.Phone,
			"updated_at":        time.Now().UTC(),
			"version":           expectedVersion + 1,
		})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderVersionConflict
	}

	order.Version = expectedVersion + 1

	return nil
}

// AggregateByOwner computes every owner's metrics in one statement, so all
// counts and sums come from the same snapshot. It reads from a replica when configured.
// The FILTER aggregates have no builder form, so the statement runs raw.
func (repo *orderRepository) AggregateByOwner(ctx context.Context) ([]*entity.SellerMetric, error) {
	var rows []*model.SellerMetricRow

	if err := repo.q.OrderModel.WithContext(ctx).
		ReadDB().
		UnderlyingDB().
		Raw(sellerMetricsQuery, map[string]any{
			"paid":     entity.OrderStatusPaid.String(),
			"pending":  entity.OrderStatusPending.String(),
			"canceled": entity.OrderStatusCanceled.String(),
		}).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate seller metrics")
	}

	metrics := make([]*entity.SellerMetric, len(rows))
	for i, row := range rows {
		metrics[i] = &entity.SellerMetric{
			SellerID:       row.SellerID,
			TotalOrders:    row.TotalOrders,
			PaidOrders:     row.PaidOrders,
			PendingOrders:  row.PendingOrders,
			CanceledOrders: row.CanceledOrders,
			TotalRevenue:   row.TotalRevenue,
			PendingRevenue: row.PendingRevenue,
			LastPaidAt:     row.LastPaidAt,
		}
	}

	return metrics, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]entity.OrderLine, len(data.Lines))
	for i, line := range data.Lines {
		lines[i] = entity.OrderLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}

	order := &entity.Order{
		ID:               data.ID,
		OwnerID:          data.UserID,
		CreatedAt:        data.CreatedAt,
		Status:           entity.OrderStatus(data.Status),
		TotalAmount:      data.TotalAmount,
		Lines:            lines,
		PaidAt:           data.PaidAt,
		PaymentReference: data.PaymentReference,
		Version:          data.Version,
	}
	if data.IdempotencyKey != nil {
		order.IdempotencyKey = *data.IdempotencyKey
	}
	if data.CustomerName != nil || data.AddressLine1 != nil || data.City != nil || data.Country != nil || data.Phone != nil {
		order.Checkout = &entity.CheckoutDetails{
			CustomerName: deref(data.CustomerName),
			AddressLine1: deref(data.AddressLine1),
			City:         deref(data.City),
			Country:      deref(data.Country),
			Phone:        deref(data.Phone),
		}
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLineModel, len(data.Lines))
	for i, line := range data.Lines {
		lines[i] = model.OrderLineModel{
			OrderID:   data.ID,
			ProductID: line.ProductID,
			Position:  i,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}

	orderM := &model.OrderModel{
		ID:               data.ID,
		UserID:           data.OwnerID,
		Status:           data.Status.String(),
		TotalAmount:      data.TotalAmount,
		PaidAt:           data.PaidAt,
		PaymentReference: data.PaymentReference,
		Version:          data.Version,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.CreatedAt,
		Lines:            lines,
	}
	if data.IdempotencyKey != "" {
		key := data.IdempotencyKey
		orderM.IdempotencyKey = &key
	}
	if data.Checkout != nil {
		orderM.CustomerName = &data.Checkout.CustomerName
		orderM.AddressLine1 = &data.Checkout.AddressLine1
		orderM.City = &data.Checkout.City
		orderM.Country = &data.Checkout.Country
		orderM.Phone = &data.Checkout.Phone
	}

	return orderM
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
