package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JusticeOpara/real-estate-hub/models"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

const testSecret = "test-secret"

func protectedEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		p := GetPrincipal(c)
		return c.JSON(http.StatusOK, map[string]string{"id": p.ID.Hex(), "role": p.Role})
	}, mw...)
	return e
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	e := protectedEcho(JWTMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareBadFormat(t *testing.T) {
	e := protectedEcho(JWTMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	e := protectedEcho(JWTMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT(testSecret, 1, userID, "seller@example.com", models.RoleSeller)
	assert.NoError(t, err)

	e := protectedEcho(JWTMiddleware(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.Hex())
	assert.Contains(t, rec.Body.String(), models.RoleSeller)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"matching role passes", models.RoleSeller, []string{models.RoleSeller, models.RoleAdmin}, http.StatusOK},
		{"admin passes admin gate", models.RoleAdmin, []string{models.RoleAdmin}, http.StatusOK},
		{"buyer blocked from seller routes", models.RoleBuyer, []string{models.RoleSeller, models.RoleAdmin}, http.StatusForbidden},
		{"seller blocked from admin routes", models.RoleSeller, []string{models.RoleAdmin}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := utils.GenerateJWT(testSecret, 1, primitive.NewObjectID(), "u@example.com", tt.role)
			assert.NoError(t, err)

			e := protectedEcho(JWTMiddleware(testSecret), RequireRole(tt.allowed...))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequireRoleUnauthenticated(t *testing.T) {
	// RequireRole without JWTMiddleware sees no principal at all.
	e := protectedEcho(RequireRole(models.RoleAdmin))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
