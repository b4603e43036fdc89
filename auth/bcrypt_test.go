package auth_test

import (
	"testing"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("secret password")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret password", hash)
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := auth.HashPassword("")
	assert.ErrorIs(t, err, auth.ErrNoEmptyString)
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := auth.HashPassword("same input")
	require.NoError(t, err)

	second, err := auth.HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	assert.NoError(t, auth.ComparePasswordAndHash("same input", first))
	assert.NoError(t, auth.ComparePasswordAndHash("same input", second))
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)

	assert.NoError(t, auth.ComparePasswordAndHash("correct horse", hash))

	err = auth.ComparePasswordAndHash("wrong horse", hash)
	assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
}

func TestHashPasswordCostClamped(t *testing.T) {
	// out of range costs fall back to the default instead of failing
	hash, err := auth.HashPasswordCost("secret", 99)
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePasswordAndHash("secret", hash))
}

func TestRandomPasswordHash(t *testing.T) {
	hash := auth.RandomPasswordHash()
	assert.NotEmpty(t, hash)
}
