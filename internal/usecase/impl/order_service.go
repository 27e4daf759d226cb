// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	qrCode      service.QRCodeService
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		qrCode:      params.QRCode,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates the cart against the catalog and persists a pending order in one transaction.
func (srv *orderService) Submit(ctx context.Context, principal entity.Principal, input *usecase.SubmitOrderInput) (*usecase.SubmitOrderOutput, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrMissingUserClaim
	}

	cart := input.Lines()
	if len(cart) == 0 {
		return nil, domainerrors.ErrEmptyItems
	}

	var output *usecase.SubmitOrderOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		if input.IdempotencyKey != "" {
			existing, err := orderRepo.FindByIdempotencyKey(ctx, principal.UserID, input.IdempotencyKey)
			if err == nil {
				output = &usecase.SubmitOrderOutput{Order: existing, Created: false}

				return nil
			}
			if !errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(err, "failed to look up idempotency key")
			}
		}

		catalog, err := repoFactory.NewProductRepository().FindByIDs(ctx, entity.ProductIDs(cart))
		if err != nil {
			return errors.Wrap(err, "failed to load products")
		}

		order, err := entity.NewOrder(principal.UserID, cart, catalog, srv.now())
		if err != nil {
			return err
		}
		order.IdempotencyKey = input.IdempotencyKey

		if err := orderRepo.Create(ctx, order); err != nil {
			if errors.Is(err, repository.ErrDuplicateIdempotencyKey) {
				return domainerrors.ErrConflict.WithDetails("idempotency key already used")
			}
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to create order")
		}

		output = &usecase.SubmitOrderOutput{Order: order, Created: true}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order submission failed", slog.String("userID", principal.UserID.String()), slog.Any("error", err))

		return nil, err
	}

	if output.Created {
		srv.log(ctx).Info("Order created",
			slog.String("orderID", output.Order.ID.String()),
			slog.String("total", output.Order.TotalAmount.StringFixed(2)),
			slog.Int("lines", len(output.Order.Lines)))
		srv.publish(ctx, constants.OrderEventCreated, output.Order)
	}

	return output, nil
}

// Pay marks the requester's pending order as paid.
func (srv *orderService) Pay(ctx context.Context, principal entity.Principal, orderID uuid.UUID, input *usecase.PayOrderInput) (*entity.Order, error) {
	order, err := srv.transition(ctx, principal, orderID, func(order *entity.Order) error {
		return order.Pay(input.Checkout, input.PaymentReference, srv.now())
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order paid", slog.String("orderID", order.ID.String()), slog.String("paymentReference", *order.PaymentReference))
	srv.publish(ctx, constants.OrderEventPaid, order)

	return order, nil
}

// Cancel cancels the requester's pending order.
func (srv *orderService) Cancel(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.transition(ctx, principal, orderID, func(order *entity.Order) error {
		return order.Cancel()
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order canceled", slog.String("orderID", order.ID.String()))
	srv.publish(ctx, constants.OrderEventCanceled, order)

	return order, nil
}

// transition loads an owned order, applies apply and writes it back guarded by the read version.
func (srv *orderService) transition(ctx context.Context, principal entity.Principal, orderID uuid.UUID, apply func(*entity.Order) error) (*entity.Order, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrMissingUserClaim
	}

	var result *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, orderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}
		if !order.IsOwnedBy(principal.UserID) {
			return domainerrors.ErrNotFound
		}

		expectedVersion := order.Version
		if err := apply(order); err != nil {
			return err
		}

		if err := orderRepo.UpdateStatus(ctx, order, expectedVersion); err != nil {
			if errors.Is(err, repository.ErrOrderVersionConflict) {
				return domainerrors.ErrConflict
			}

			return errors.Wrap(err, "failed to update order status")
		}

		result = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// List returns the orders visible to the requester, newest first.
func (srv *orderService) List(ctx context.Context, principal entity.Principal) ([]*entity.Order, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrMissingUserClaim
	}

	orders, err := srv.orderRepo.ListVisible(ctx, entity.VisibilityFor(principal))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns one order if it lies inside the requester's visibility.
func (srv *orderService) Get(ctx context.Context, principal entity.Principal, orderID uuid.UUID) (*entity.Order, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrMissingUserClaim
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	visibility := entity.VisibilityFor(principal)

	var owners map[uuid.UUID]uuid.UUID
	if visibility.Scope == entity.ScopeProductOwner {
		products, err := srv.productRepo.FindByIDs(ctx, order.ProductIDs())
		if err != nil {
			return nil, errors.Wrap(err, "failed to load order products")
		}

		owners = make(map[uuid.UUID]uuid.UUID, len(products))
		for id, product := range products {
			owners[id] = product.OwnerID
		}
	}

	if !visibility.Allows(order, owners) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ReceiptQR renders the receipt QR code of a visible paid order.
func (srv *orderService) ReceiptQR(ctx context.Context, principal entity.Principal, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.Get(ctx, principal, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != entity.OrderStatusPaid || order.PaymentReference == nil {
		return nil, domainerrors.ErrOrderNotPaid
	}

	png, err := srv.qrCode.GenerateReceiptQR(order.ID, *order.PaymentReference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR code")
	}

	return png, nil
}

// publish emits a lifecycle event after commit. Failures are logged only.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        eventType,
		OrderID:     order.ID.String(),
		OwnerID:     order.OwnerID.String(),
		Status:      order.Status.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		OccurredAt:  srv.now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err))
	}
}
