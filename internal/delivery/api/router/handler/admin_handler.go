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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the SuperAdmin endpoints.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// SellerMetrics handles GET /admin/metrics
func (h *AdminHandler) SellerMetrics(c echo.Context) error {
	metrics, err := h.adminUC.SellerMetrics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerMetricResponses(metrics))
}

// ListStaff handles GET /admin/users
func (h *AdminHandler) ListStaff(c echo.Context) error {
	users, err := h.adminUC.ListStaff(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*UserResponse, len(users))
	for i, user := range users {
		resp[i] = newUserResponse(user)
	}

	return response.Success(c, http.StatusOK, resp)
}

// Deactivate handles POST /admin/users/:id/deactivate
func (h *AdminHandler) Deactivate(c echo.Context) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	userID, err := parseIDParam(c, domainerrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := h.adminUC.Deactivate(c.Request().Context(), principal, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Activate handles POST /admin/users/:id/activate
func (h *AdminHandler) Activate(c echo.Context) error {
	userID, err := parseIDParam(c, domainerrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := h.adminUC.Activate(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Promote handles POST /admin/users/:id/promote
func (h *AdminHandler) Promote(c echo.Context) error {
	userID, err := parseIDParam(c, domainerrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	user, err := h.adminUC.Promote(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LevelResponse{ID: user.ID, Level: user.Level})
}

// Demote handles POST /admin/users/:id/demote
func (h *AdminHandler) Demote(c echo.Context) error {
	userID, err := parseIDParam(c, domainerrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	user, err := h.adminUC.Demote(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LevelResponse{ID: user.ID, Level: user.Level})
}
