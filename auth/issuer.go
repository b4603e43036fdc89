package auth

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ledgerWriter is the slice of the token ledger the issuer needs
type ledgerWriter interface {
	CreateTx(ctx context.Context, tx bun.IDB, record *Token, criteria ...repository.InsertCriteria) (*Token, error)
	InvalidateAllForUserTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error
}

// TokenIssuer signs a session token and records it in the ledger. Issuance
// retires every previous token for the user in the same transaction, so at
// most one live token per user ever exists.
type TokenIssuer struct {
	service TokenService
	ledger  ledgerWriter
	tx      repository.TransactionManager
	logger  Logger
}

// NewTokenIssuer creates a TokenIssuer backed by the given ledger
func NewTokenIssuer(service TokenService, ledger ledgerWriter, tx repository.TransactionManager) *TokenIssuer {
	return &TokenIssuer{
		service: service,
		ledger:  ledger,
		tx:      tx,
		logger:  defLogger{},
	}
}

func (ti *TokenIssuer) WithLogger(logger Logger) *TokenIssuer {
	if logger != nil {
		ti.logger = logger
	}
	return ti
}

// Issue signs a token for identity and swaps it into the ledger atomically.
// On any failure the transaction rolls back and the caller gets no token;
// there is no state where the old tokens are dead and no new one exists.
func (ti *TokenIssuer) Issue(ctx context.Context, identity Identity, opts ...IssueOption) (string, error) {
	userID, err := uuid.Parse(identity.ID())
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryBadInput, "identity has no usable ID")
	}

	claims := ti.service.NewClaims(identity, opts...)

	signed, err := ti.service.SignClaims(claims)
	if err != nil {
		return "", err
	}

	err = ti.tx.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := ti.ledger.InvalidateAllForUserTx(ctx, tx, userID); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to retire previous tokens")
		}

		record := &Token{
			UserID:    userID,
			Token:     signed,
			ExpiresAt: claims.Expires(),
			IsValid:   true,
		}

		if _, err := ti.ledger.CreateTx(ctx, tx, record); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to record issued token")
		}

		return nil
	})

	if err != nil {
		ti.logger.Error("TokenIssuer failed to swap ledger entries", "user", userID, "error", err)
		return "", err
	}

	return signed, nil
}

// IssueAt is a convenience for deterministic issuance in tests and fixtures
func (ti *TokenIssuer) IssueAt(ctx context.Context, identity Identity, issuedAt time.Time, ttl time.Duration) (string, error) {
	return ti.Issue(ctx, identity, WithIssuedAt(issuedAt), WithTTL(ttl))
}
