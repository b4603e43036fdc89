package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verifierFixture struct {
	service  *auth.TokenServiceImpl
	ledger   *memoryLedger
	issuer   *auth.TokenIssuer
	verifier *auth.TokenVerifier
}

func newVerifierFixture(now func() time.Time) *verifierFixture {
	svc := auth.NewTokenService(newTestConfig(), nil).WithClock(now)
	ledger := newMemoryLedger()
	return &verifierFixture{
		service:  svc,
		ledger:   ledger,
		issuer:   auth.NewTokenIssuer(svc, ledger, &memoryTxManager{}),
		verifier: auth.NewTokenVerifier(svc, ledger).WithClock(now),
	}
}

func TestVerifyIssuedToken(t *testing.T) {
	fx := newVerifierFixture(time.Now)
	identity := newTestIdentity()

	token, err := fx.issuer.Issue(context.Background(), identity)
	require.NoError(t, err)

	claims, err := fx.verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID(), claims.UserID())
	assert.Equal(t, identity.Role(), claims.Role())
}

func TestVerifyRejectsRevokedToken(t *testing.T) {
	fx := newVerifierFixture(time.Now)

	token, err := fx.issuer.Issue(context.Background(), newTestIdentity())
	require.NoError(t, err)

	require.NoError(t, fx.ledger.Revoke(context.Background(), token))

	_, err = fx.verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestVerifyRejectsUnknownToken(t *testing.T) {
	fx := newVerifierFixture(time.Now)

	// sign a token without recording it; valid crypto, no ledger entry
	signed, err := fx.service.SignClaims(fx.service.NewClaims(newTestIdentity()))
	require.NoError(t, err)

	_, err = fx.verifier.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestVerifyRejectsInactiveUser(t *testing.T) {
	fx := newVerifierFixture(time.Now)
	identity := newTestIdentity()

	token, err := fx.issuer.Issue(context.Background(), identity)
	require.NoError(t, err)

	fx.ledger.setUserStatus(uuid.MustParse(identity.ID()), auth.UserStatusInactive)

	_, err = fx.verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestVerifyExpiryBoundaryIsExclusive(t *testing.T) {
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expiry := issuedAt.Add(time.Hour)

	cases := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{"one second before expiry", expiry.Add(-time.Second), false},
		{"exactly at expiry", expiry, true},
		{"one second after expiry", expiry.Add(time.Second), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current := issuedAt
			now := func() time.Time { return current }

			fx := newVerifierFixture(now)
			token, err := fx.issuer.IssueAt(context.Background(), newTestIdentity(), issuedAt, time.Hour)
			require.NoError(t, err)

			current = tc.now
			_, err = fx.verifier.Verify(context.Background(), token)
			if tc.wantErr {
				assert.ErrorIs(t, err, auth.ErrTokenExpired)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIssueSupersedesPreviousToken(t *testing.T) {
	fx := newVerifierFixture(time.Now)
	identity := newTestIdentity()
	ctx := context.Background()

	first, err := fx.issuer.Issue(ctx, identity)
	require.NoError(t, err)

	second, err := fx.issuer.Issue(ctx, identity)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = fx.verifier.Verify(ctx, first)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked, "older token should be retired")

	_, err = fx.verifier.Verify(ctx, second)
	assert.NoError(t, err, "newest token should be the only live one")

	userID := uuid.MustParse(identity.ID())
	assert.Equal(t, 1, fx.ledger.liveCount(userID, time.Now()))
}

func TestConcurrentIssuanceKeepsOneLiveToken(t *testing.T) {
	fx := newVerifierFixture(time.Now)
	identity := newTestIdentity()
	ctx := context.Background()

	const logins = 16
	done := make(chan error, logins)

	for i := 0; i < logins; i++ {
		go func() {
			_, err := fx.issuer.Issue(ctx, identity)
			done <- err
		}()
	}

	for i := 0; i < logins; i++ {
		require.NoError(t, <-done)
	}

	userID := uuid.MustParse(identity.ID())
	assert.Equal(t, 1, fx.ledger.liveCount(userID, time.Now()))
}
