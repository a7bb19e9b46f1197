package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/mgmt/internal/apierror"
)

// CurrentTenantContextKey is the key to retrieve the current_tenant from echo.Context.
const CurrentTenantContextKey = "current_tenant"

// Bearer returns a bearer token auth middleware.
// tokens maps each accepted token to its tenant which is stored into echo.Context.
func Bearer(tokens map[string]string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authorization := c.Request().Header.Get(echo.HeaderAuthorization)

			tenant, ok := tokens[token(authorization)]
			if !ok || tenant == "" {
				return c.JSON(http.StatusUnauthorized, apierror.NewWithCode(
					http.StatusUnauthorized,
					"invalid_token",
					"Invalid token.",
				))
			}

			c.Set(CurrentTenantContextKey, tenant)
			return next(c)
		}
	}
}

func token(authorization string) string {
	parts := strings.Fields(authorization)
	if len(parts) < 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
