package sec

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type adminKey struct{}

// RequireAdmin returns middleware that gates a route on a valid bearer
// token. Requests without a token are rejected with 401 before any handler
// runs; requests with a valid token proceed with the admin identity attached
// to the request context. Every admin-only route must be registered behind
// this middleware; there is no other authorization path.
func RequireAdmin(tokens *Tokens) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw := strings.TrimPrefix(header, "Bearer ")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			claims, err := tokens.Validate(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}
			ctx := SetAdmin(c.Request().Context(), claims)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetAdmin returns the identity of the authenticated admin. The second
// return is false if the context passed through no [RequireAdmin] middleware.
func GetAdmin(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(adminKey{}).(Claims)
	return claims, ok
}

// SetAdmin attaches an admin identity to the context. [RequireAdmin] does
// this automatically; this function is provided as a convenience for testing.
func SetAdmin(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, adminKey{}, claims)
}
