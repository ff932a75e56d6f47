package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JusticeOpara/real-estate-hub/utils"
)

// RequireRole gates a route group to the given roles. Runs after
// JWTMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := GetPrincipal(c)
			if p.ID.IsZero() {
				return utils.Fail(c, http.StatusUnauthorized, "Authentication required")
			}
			if !allowed[p.Role] {
				return utils.Fail(c, http.StatusForbidden, "You do not have permission to perform this action")
			}
			return next(c)
		}
	}
}
