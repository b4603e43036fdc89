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

type autherFixture struct {
	auther *auth.Auther
	ledger *memoryLedger
	store  *memoryUserStore
	user   *auth.User
}

func newAutherFixture(t *testing.T) *autherFixture {
	t.Helper()

	hash, err := auth.HashPassword("sup3r-secret")
	require.NoError(t, err)

	user := &auth.User{
		ID:           uuid.New(),
		Username:     "frank",
		Email:        "frank@example.com",
		PasswordHash: hash,
		Role:         auth.RoleUser,
		Status:       auth.UserStatusActive,
	}

	store := newMemoryUserStore()
	store.add(user)

	svc := auth.NewTokenService(newTestConfig(), nil)
	ledger := newMemoryLedger()
	issuer := auth.NewTokenIssuer(svc, ledger, &memoryTxManager{})
	verifier := auth.NewTokenVerifier(svc, ledger)
	provider := auth.NewUserProvider(store)

	return &autherFixture{
		auther: auth.NewAuthenticator(provider, issuer, verifier, ledger),
		ledger: ledger,
		store:  store,
		user:   user,
	}
}

func TestLoginReturnsVerifiableToken(t *testing.T) {
	fx := newAutherFixture(t)
	ctx := context.Background()

	result, err := fx.auther.Login(ctx, "frank", "sup3r-secret")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, fx.user.ID.String(), result.UserID)
	assert.Equal(t, "frank", result.Username)
	assert.Equal(t, "frank@example.com", result.Email)
	assert.Equal(t, auth.RoleUser, result.Role)

	claims, err := fx.auther.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, fx.user.ID.String(), claims.UserID())
}

func TestLoginByEmail(t *testing.T) {
	fx := newAutherFixture(t)

	result, err := fx.auther.Login(context.Background(), "frank@example.com", "sup3r-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	fx := newAutherFixture(t)

	_, err := fx.auther.Login(context.Background(), "frank", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	fx := newAutherFixture(t)

	_, err := fx.auther.Login(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveAccountIsIndistinguishable(t *testing.T) {
	statuses := []auth.UserStatus{
		auth.UserStatusPending,
		auth.UserStatusOngoing,
		auth.UserStatusInactive,
		auth.UserStatusDeleted,
	}

	for _, status := range statuses {
		t.Run(status, func(t *testing.T) {
			fx := newAutherFixture(t)
			fx.user.Status = status

			_, err := fx.auther.Login(context.Background(), "frank", "sup3r-secret")
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestSecondLoginRetiresFirstToken(t *testing.T) {
	fx := newAutherFixture(t)
	ctx := context.Background()

	first, err := fx.auther.Login(ctx, "frank", "sup3r-secret")
	require.NoError(t, err)

	second, err := fx.auther.Login(ctx, "frank", "sup3r-secret")
	require.NoError(t, err)

	_, err = fx.auther.Authenticate(ctx, first.Token)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)

	_, err = fx.auther.Authenticate(ctx, second.Token)
	assert.NoError(t, err)

	assert.Equal(t, 1, fx.ledger.liveCount(fx.user.ID, time.Now()))
}

func TestLogoutRetiresToken(t *testing.T) {
	fx := newAutherFixture(t)
	ctx := context.Background()

	result, err := fx.auther.Login(ctx, "frank", "sup3r-secret")
	require.NoError(t, err)

	require.NoError(t, fx.auther.Logout(ctx, result.Token))

	_, err = fx.auther.Authenticate(ctx, result.Token)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestLogoutIsIdempotent(t *testing.T) {
	fx := newAutherFixture(t)
	ctx := context.Background()

	result, err := fx.auther.Login(ctx, "frank", "sup3r-secret")
	require.NoError(t, err)

	assert.NoError(t, fx.auther.Logout(ctx, result.Token))
	assert.NoError(t, fx.auther.Logout(ctx, result.Token))
	assert.NoError(t, fx.auther.Logout(ctx, "token-that-never-existed"))
}

func TestAuthenticateAfterUserDeactivated(t *testing.T) {
	fx := newAutherFixture(t)
	ctx := context.Background()

	result, err := fx.auther.Login(ctx, "frank", "sup3r-secret")
	require.NoError(t, err)

	// a session issued while active dies the moment the account does
	fx.ledger.setUserStatus(fx.user.ID, auth.UserStatusDeleted)

	_, err = fx.auther.Authenticate(ctx, result.Token)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}
