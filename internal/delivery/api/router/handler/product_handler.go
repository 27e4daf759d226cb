package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListPublic(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products))
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c, domainerrors.ErrCatalogProductNotFound)
	if err != nil {
		return err
	}

	product, err := h.productUC.GetPublic(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// MyProducts handles GET /products/mine
func (h *ProductHandler) MyProducts(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.Mine(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponses(products))
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUC.Create(c.Request().Context(), principal, toProductInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, "/products/"+product.ID.String(), newProductResponse(product))
}

// UpdateProduct handles PUT /products/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, domainerrors.ErrCatalogProductNotFound)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUC.Update(c.Request().Context(), principal, id, toProductInput(&req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c, domainerrors.ErrCatalogProductNotFound)
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), principal, id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
