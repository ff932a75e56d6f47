package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := primitive.NewObjectID()

	token, err := GenerateJWT(testSecret, 1, userID, "seller@example.com", "seller")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateJWT(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "seller@example.com", claims.Email)
	assert.Equal(t, "seller", claims.Role)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testSecret, 1, primitive.NewObjectID(), "a@b.com", "buyer")
	assert.NoError(t, err)

	_, err = ValidateJWT("different-secret", token)
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestGenerateJWTMissingSecret(t *testing.T) {
	_, err := GenerateJWT("", 1, primitive.NewObjectID(), "a@b.com", "buyer")
	assert.Error(t, err)
}
