package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"omitempty,oneof=buyer seller"`
}

func TestRequestValidator(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.com", Password: "secret1"}))
	assert.Error(t, v.Validate(&sampleRequest{Email: "not-an-email", Password: "secret1"}))
}

func TestValidationFields(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(&sampleRequest{Email: "bad", Password: "123", Role: "admin"})
	assert.Error(t, err)

	fields := ValidationFields(err)
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must be at least 6", fields["password"])
	assert.Equal(t, "must be one of: buyer seller", fields["role"])
}
