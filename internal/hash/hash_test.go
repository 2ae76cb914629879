package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, h)
	assert.NotEqual(t, "secret123", h)

	assert.True(t, CheckPassword(h, "secret123"))
	assert.False(t, CheckPassword(h, "wrong"))
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret123", 99)
	require.NoError(t, err)
	assert.True(t, CheckPassword(h, "secret123"))
}
