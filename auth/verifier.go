package auth

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// ledgerReader is the slice of the token ledger the verifier needs
type ledgerReader interface {
	FindLive(ctx context.Context, token string, now time.Time) (*Token, error)
}

// TokenVerifier checks a presented token in two stages: cryptographic
// validation first, then a ledger lookup. A forged or expired token never
// costs a database round trip.
type TokenVerifier struct {
	service TokenService
	ledger  ledgerReader
	logger  Logger
	now     func() time.Time
}

func NewTokenVerifier(service TokenService, ledger ledgerReader) *TokenVerifier {
	return &TokenVerifier{
		service: service,
		ledger:  ledger,
		logger:  defLogger{},
		now:     time.Now,
	}
}

func (tv *TokenVerifier) WithLogger(logger Logger) *TokenVerifier {
	if logger != nil {
		tv.logger = logger
	}
	return tv
}

// WithClock overrides the time source, mostly for deterministic tests
func (tv *TokenVerifier) WithClock(now func() time.Time) *TokenVerifier {
	if now != nil {
		tv.now = now
	}
	return tv
}

// Verify returns the claims for a token that is cryptographically sound AND
// still live in the ledger. Both checks must pass; a validly signed token
// that was revoked, superseded, or belongs to a non active user fails.
func (tv *TokenVerifier) Verify(ctx context.Context, token string) (AuthClaims, error) {
	claims, err := tv.service.Validate(token)
	if err != nil {
		return nil, err
	}

	now := tv.now()

	// expiry boundary is exclusive: dead at the exact expiry instant
	if !now.Before(claims.Expires()) {
		return nil, ErrTokenExpired
	}

	if _, err := tv.ledger.FindLive(ctx, token, now); err != nil {
		// the ledger reports a missing row as a record-not-found error; to
		// the caller that means the token was revoked or superseded
		if repository.IsRecordNotFound(err) {
			return nil, ErrTokenRevoked
		}
		tv.logger.Error("TokenVerifier ledger lookup failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to check token ledger")
	}

	return claims, nil
}
