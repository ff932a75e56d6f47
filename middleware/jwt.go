package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/JusticeOpara/real-estate-hub/authz"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

const principalKey = "principal"

// JWTMiddleware verifies the bearer token and stores the resulting principal
// on the request context. Claims can be stale — a deactivation or role change
// after issuance is invisible here — so RequireActiveUser re-checks the
// account against storage before any protected handler runs.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.Fail(c, http.StatusUnauthorized, "Authorization header is required")
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return utils.Fail(c, http.StatusUnauthorized, "Invalid authorization header format")
			}

			claims, err := utils.ValidateJWT(secret, tokenParts[1])
			if err != nil {
				return utils.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			}

			// Active stays false until RequireActiveUser confirms it.
			c.Set(principalKey, authz.Principal{
				ID:    claims.UserID,
				Email: claims.Email,
				Role:  claims.Role,
			})

			return next(c)
		}
	}
}

// GetPrincipal returns the principal stored by JWTMiddleware. The zero value
// comes back for unauthenticated requests.
func GetPrincipal(c echo.Context) authz.Principal {
	p, _ := c.Get(principalKey).(authz.Principal)
	return p
}
