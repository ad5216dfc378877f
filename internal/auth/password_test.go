package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("swordfish1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "swordfish1", hash)

	assert.NoError(t, ComparePassword(hash, "swordfish1"))
	assert.Error(t, ComparePassword(hash, "swordfish2"))
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePassword("1234567"), ErrPasswordTooShort)
	assert.NoError(t, ValidatePassword("12345678"))
}
