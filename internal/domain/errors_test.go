package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_FieldLookups(t *testing.T) {
	err := NewValidationError(map[string]string{
		"trn":   "must be 15 digits starting with 100",
		"email": "invalid email address",
	})

	assert.True(t, err.HasField("trn"))
	assert.False(t, err.HasField("phone"))
	assert.Equal(t, "invalid email address", err.Field("email"))
	assert.Empty(t, err.Field("phone"))
	assert.Equal(t, "validation failed: email, trn", err.Error())
}
