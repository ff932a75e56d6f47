package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JusticeOpara/real-estate-hub/models"
	"github.com/JusticeOpara/real-estate-hub/utils"
)

type stubUserFinder struct {
	result *mongo.SingleResult
}

func (s stubUserFinder) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	return s.result
}

func userResult(user models.User) *mongo.SingleResult {
	return mongo.NewSingleResultFromDocument(user, nil, nil)
}

func activeRequest(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireActiveUserAllowsActiveAccount(t *testing.T) {
	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT(testSecret, 1, userID, "seller@example.com", models.RoleSeller)
	assert.NoError(t, err)

	finder := stubUserFinder{result: userResult(models.User{
		ID:       userID,
		Role:     models.RoleSeller,
		IsActive: true,
	})}

	e := protectedEcho(JWTMiddleware(testSecret), RequireActiveUser(finder))
	rec := activeRequest(e, token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireActiveUserRejectsDeactivatedAccount(t *testing.T) {
	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT(testSecret, 1, userID, "seller@example.com", models.RoleSeller)
	assert.NoError(t, err)

	// A valid, unexpired token does not help a deactivated account.
	finder := stubUserFinder{result: userResult(models.User{
		ID:       userID,
		Role:     models.RoleSeller,
		IsActive: false,
	})}

	e := protectedEcho(JWTMiddleware(testSecret), RequireActiveUser(finder))
	rec := activeRequest(e, token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "deactivated")
}

func TestRequireActiveUserRejectsDeletedAccount(t *testing.T) {
	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT(testSecret, 1, userID, "seller@example.com", models.RoleSeller)
	assert.NoError(t, err)

	// NewSingleResultFromDocument needs a non-nil document even when the
	// result only carries an error.
	finder := stubUserFinder{result: mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)}

	e := protectedEcho(JWTMiddleware(testSecret), RequireActiveUser(finder))
	rec := activeRequest(e, token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireActiveUserRefreshesStaleRole(t *testing.T) {
	userID := primitive.NewObjectID()

	// Token still says admin; storage says the account was demoted to buyer.
	token, err := utils.GenerateJWT(testSecret, 1, userID, "demoted@example.com", models.RoleAdmin)
	assert.NoError(t, err)

	finder := stubUserFinder{result: userResult(models.User{
		ID:       userID,
		Role:     models.RoleBuyer,
		IsActive: true,
	})}

	e := protectedEcho(JWTMiddleware(testSecret), RequireActiveUser(finder), RequireRole(models.RoleAdmin))
	rec := activeRequest(e, token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireActiveUserWithoutPrincipal(t *testing.T) {
	finder := stubUserFinder{result: userResult(models.User{IsActive: true})}

	e := protectedEcho(RequireActiveUser(finder))
	rec := activeRequest(e, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
