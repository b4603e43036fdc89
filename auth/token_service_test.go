package auth_test

import (
	"testing"
	"time"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceSignAndValidate(t *testing.T) {
	svc := auth.NewTokenService(newTestConfig(), nil)
	identity := newTestIdentity()

	claims := svc.NewClaims(identity)
	signed, err := svc.SignClaims(claims)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	decoded, err := svc.Validate(signed)
	require.NoError(t, err)

	assert.Equal(t, identity.ID(), decoded.UserID())
	assert.Equal(t, identity.ID(), decoded.Subject())
	assert.Equal(t, identity.Role(), decoded.Role())
	assert.Equal(t, "test-issuer", decoded.Issuer)
}

func TestTokenServiceClaimsCarryExpiry(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	svc := auth.NewTokenService(newTestConfig(), nil)
	claims := svc.NewClaims(newTestIdentity(), auth.WithIssuedAt(issuedAt), auth.WithTTL(time.Hour))

	assert.Equal(t, issuedAt, claims.IssuedAt())
	assert.Equal(t, issuedAt.Add(time.Hour), claims.Expires())
	assert.NotEmpty(t, claims.ID, "claims should carry a token ID")
}

func TestTokenServiceRejectsExpired(t *testing.T) {
	now := time.Now()

	svc := auth.NewTokenService(newTestConfig(), nil)
	claims := svc.NewClaims(newTestIdentity(),
		auth.WithIssuedAt(now.Add(-2*time.Hour)),
		auth.WithTTL(time.Hour))

	signed, err := svc.SignClaims(claims)
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenServiceRejectsForeignKey(t *testing.T) {
	identity := newTestIdentity()

	svc := auth.NewTokenService(newTestConfig(), nil)
	signed, err := svc.SignClaims(svc.NewClaims(identity))
	require.NoError(t, err)

	other := auth.NewTokenService(testConfig{
		signingKey: "a different key",
		issuer:     "test-issuer",
		audience:   []string{"test-audience"},
	}, nil)

	_, err = other.Validate(signed)
	require.Error(t, err)
	assert.False(t, auth.IsTokenExpiredError(err))
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	svc := auth.NewTokenService(newTestConfig(), nil)

	_, err := svc.Validate("not.a.token")
	require.Error(t, err)
	assert.False(t, auth.IsTokenExpiredError(err))
}

func TestTokenServiceRejectsWrongIssuer(t *testing.T) {
	minted := auth.NewTokenService(testConfig{
		signingKey: "test-signing-key",
		issuer:     "someone-else",
		audience:   []string{"test-audience"},
	}, nil)

	signed, err := minted.SignClaims(minted.NewClaims(newTestIdentity()))
	require.NoError(t, err)

	svc := auth.NewTokenService(newTestConfig(), nil)
	_, err = svc.Validate(signed)
	assert.Error(t, err)
}
