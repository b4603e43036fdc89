package auth_test

import (
	"context"
	"testing"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a RepositoryManager's Users repo must plug into the provider without an adapter
var _ auth.UserStore = (auth.Users)(nil)

func TestVerifyIdentityKnownUser(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	store := newMemoryUserStore()
	store.add(&auth.User{
		ID:           uuid.New(),
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
		Status:       auth.UserStatusActive,
	})

	provider := auth.NewUserProvider(store)

	identity, err := provider.VerifyIdentity(context.Background(), "ada", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ada", identity.Username())
	assert.Equal(t, "ada@example.com", identity.Email())
}

func TestVerifyIdentityUnknownUserCollapsesToMismatch(t *testing.T) {
	provider := auth.NewUserProvider(newMemoryUserStore())

	_, err := provider.VerifyIdentity(context.Background(), "nobody", "whatever")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
}

func TestVerifyIdentityMissingRecordReadsAsNotFound(t *testing.T) {
	store := newMemoryUserStore()

	_, err := store.GetByIdentifier(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, repository.IsRecordNotFound(err))
}
