package middleware

import (
	"strings"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
}

// AuthMiddleware validates access tokens and resolves the request principal.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userRepo: params.UserRepo,
	}
}

// Authenticate validates the bearer token, loads the user and stores the principal.
// The role always comes from the stored account, so deactivation and role changes
// apply to tokens issued earlier.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return domainerrors.ErrMissingUserClaim
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUnauthorized.WithDetails("user no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load authenticated user")
		}
		if !user.IsActive {
			return domainerrors.ErrAccountInactive
		}

		deliverycontext.SetPrincipal(c, entity.Principal{UserID: user.ID, Role: user.Role})

		return next(c)
	}
}

// RequireRoles allows the request only if the principal holds one of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return domainerrors.ErrMissingUserClaim
			}

			if !allowed.Contains(principal.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
