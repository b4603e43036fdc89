package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	auth.Users
}

func (s *stubUserRepo) RegisterTx(ctx context.Context, tx bun.IDB, user *auth.User) (*auth.User, error) {
	return user, nil
}

type stubRepoManager struct {
	auth.RepositoryManager
	users *stubUserRepo
}

func (s *stubRepoManager) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return f(ctx, bun.Tx{})
}

func (s *stubRepoManager) Users() auth.Users { return s.users }

func TestRegisterUserHashesAtConfiguredCost(t *testing.T) {
	repo := &stubRepoManager{users: &stubUserRepo{}}

	handler := auth.NewRegisterUserHandler(repo).WithBcryptCost(bcrypt.MinCost)

	user, err := handler.Execute(context.Background(), auth.RegisterUserMessage{
		Email:    "ada@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestRegisterUserDefaultsCost(t *testing.T) {
	repo := &stubRepoManager{users: &stubUserRepo{}}

	// non positive overrides are ignored, the default work factor stays
	handler := auth.NewRegisterUserHandler(repo).WithBcryptCost(0)

	user, err := handler.Execute(context.Background(), auth.RegisterUserMessage{
		Email:    "ada@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, auth.DefaultBcryptCost, cost)
}

func TestRegisterUserDerivesUsernameFromEmail(t *testing.T) {
	repo := &stubRepoManager{users: &stubUserRepo{}}

	handler := auth.NewRegisterUserHandler(repo).WithBcryptCost(bcrypt.MinCost)

	user, err := handler.Execute(context.Background(), auth.RegisterUserMessage{
		Email:    "grace@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "grace", user.Username)
}
