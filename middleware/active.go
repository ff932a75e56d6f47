package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JusticeOpara/real-estate-hub/logger"
	"github.com/JusticeOpara/real-estate-hub/models"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

// UserFinder is the slice of *mongo.Collection the active check needs.
type UserFinder interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
}

// RequireActiveUser runs after JWTMiddleware and reloads the principal's user
// document. Deactivated or deleted accounts are rejected here, and the role
// is refreshed from storage so an admin's deactivation or demotion takes
// effect immediately instead of at token expiry.
func RequireActiveUser(users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := GetPrincipal(c)
			if p.ID.IsZero() {
				return utils.Fail(c, http.StatusUnauthorized, "Authentication required")
			}

			var user models.User
			err := users.FindOne(c.Request().Context(), bson.M{"_id": p.ID}).Decode(&user)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return utils.Fail(c, http.StatusUnauthorized, "Account no longer exists")
				}
				logger.Error().Err(err).Msg("failed to verify account")
				return utils.Fail(c, http.StatusInternalServerError, "Failed to verify account")
			}
			if !user.IsActive {
				return utils.Fail(c, http.StatusUnauthorized, "Account is deactivated")
			}

			p.Role = user.Role
			p.Active = true
			c.Set(principalKey, p)

			return next(c)
		}
	}
}
