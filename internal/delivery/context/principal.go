package context

import (
	"inventory/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the echo.Context key of the authenticated principal.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the authenticated principal in echo.Context.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal returns the authenticated principal, or false when the request is anonymous.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(entity.Principal)
	if !ok || principal.IsZero() {
		return entity.Principal{}, false
	}

	return principal, true
}
