package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"inventory/internal/delivery/api/response"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderIdempotencyKey lets clients retry order submission safely.
const HeaderIdempotencyKey = "Idempotency-Key"

const maxIdempotencyKeyLength = 100

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.List(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponses(orders))
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	orderID, err := parseIDParam(c, domainerrors.ErrNotFound)
	if err != nil {
		return err
	}

	order, err := h.orderUC.Get(c.Request().Context(), principal, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// CreateOrder handles POST /orders. A replay with a known Idempotency-Key answers 200.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	key := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	if len(key) > maxIdempotencyKeyLength {
		return domainerrors.ErrValidationFailed.WithDetails("Idempotency-Key is too long")
	}

	output, err := h.orderUC.Submit(c.Request().Context(), principal, &usecase.SubmitOrderInput{
		LineItems:      toCartLines(req.LineItems),
		CartItems:      toCartLines(req.CartItems),
		IdempotencyKey: key,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := newOrderResponse(output.Order)
	location := "/orders/" + output.Order.ID.String()

	if !output.Created {
		c.Response().Header().Set(echo.HeaderLocation, location)

		return response.Success(c, http.StatusOK, resp)
	}

	return response.Created(c, location, resp)
}

// PayOrder handles POST /orders/:id/pay
func (h *OrderHandler) PayOrder(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	orderID, err := parseIDParam(c, domainerrors.ErrNotFound)
	if err != nil {
		return err
	}

	var req PayOrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.Pay(c.Request().Context(), principal, orderID, &usecase.PayOrderInput{
		Checkout: entity.CheckoutDetails{
			CustomerName: req.CustomerName,
			AddressLine1: req.AddressLine1,
			City:         req.City,
			Country:      req.Country,
			Phone:        req.Phone,
		},
		PaymentReference: strings.TrimSpace(req.PaymentReference),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &PaymentResponse{
		ID:               order.ID,
		Status:           order.Status.String(),
		PaidAt:           order.PaidAt,
		PaymentReference: order.PaymentReference,
	})
}

// CancelOrder handles DELETE /orders/:id
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	orderID, err := parseIDParam(c, domainerrors.ErrNotFound)
	if err != nil {
		return err
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), principal, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &StatusResponse{ID: order.ID, Status: order.Status.String()})
}

// GetReceiptQR handles GET /orders/:id/receipt.png
func (h *OrderHandler) GetReceiptQR(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	orderID, err := parseIDParam(c, domainerrors.ErrNotFound)
	if err != nil {
		return err
	}

	png, err := h.orderUC.ReceiptQR(c.Request().Context(), principal, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// requirePrincipal returns the authenticated principal or MISSING_USER_CLAIM.
func requirePrincipal(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrMissingUserClaim
	}

	return principal, nil
}

// parseIDParam parses the :id path parameter. A malformed id names no resource and yields notFound.
func parseIDParam(c echo.Context, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}

func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
		return httpErr
	}

	return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
}
