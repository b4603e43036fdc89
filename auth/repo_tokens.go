package auth

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Tokens is the server side ledger of issued session tokens
type Tokens interface {
	repository.Repository[*Token]

	Create(ctx context.Context, record *Token, criteria ...repository.InsertCriteria) (*Token, error)
	CreateTx(ctx context.Context, tx bun.IDB, record *Token, criteria ...repository.InsertCriteria) (*Token, error)

	InvalidateAllForUser(ctx context.Context, userID uuid.UUID) error
	InvalidateAllForUserTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error

	Revoke(ctx context.Context, token string) error
	RevokeTx(ctx context.Context, tx bun.IDB, token string) error

	FindLive(ctx context.Context, token string, now time.Time) (*Token, error)

	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type tokens struct {
	repository.Repository[*Token]
	db *bun.DB
}

var (
	_ Tokens                        = (*tokens)(nil)
	_ repository.Repository[*Token] = (*tokens)(nil)
)

func NewTokensRepository(db *bun.DB) Tokens {
	repo := repository.NewRepository[*Token](db, repository.ModelHandlers[*Token]{
		NewRecord: func() *Token { return &Token{} },
		GetID: func(t *Token) uuid.UUID {
			if t == nil {
				return uuid.Nil
			}
			return t.ID
		},
		SetID: func(t *Token, id uuid.UUID) {
			if t != nil {
				t.ID = id
			}
		},
	})

	return &tokens{
		Repository: repo,
		db:         db,
	}
}

func (a *tokens) Create(ctx context.Context, record *Token, criteria ...repository.InsertCriteria) (*Token, error) {
	return a.CreateTx(ctx, a.db, record, criteria...)
}

func (a *tokens) CreateTx(ctx context.Context, tx bun.IDB, record *Token, criteria ...repository.InsertCriteria) (*Token, error) {
	if record != nil && record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	return a.Repository.CreateTx(ctx, tx, record, criteria...)
}

func (a *tokens) InvalidateAllForUser(ctx context.Context, userID uuid.UUID) error {
	return a.InvalidateAllForUserTx(ctx, a.db, userID)
}

// InvalidateAllForUserTx retires every ledger entry for the user. Run inside
// the same transaction that inserts the replacement so a failed issuance
// never leaves the user with zero usable tokens committed halfway.
func (a *tokens) InvalidateAllForUserTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	_, err := tx.NewUpdate().
		Model((*Token)(nil)).
		Set("is_valid = ?", false).
		Where("?TableAlias.user_id = ?", userID).
		Exec(ctx)
	return err
}

func (a *tokens) Revoke(ctx context.Context, token string) error {
	return a.RevokeTx(ctx, a.db, token)
}

// RevokeTx flips a single ledger entry to invalid. Revoking a token that is
// unknown or already retired is a no-op, not an error.
func (a *tokens) RevokeTx(ctx context.Context, tx bun.IDB, token string) error {
	_, err := tx.NewUpdate().
		Model((*Token)(nil)).
		Set("is_valid = ?", false).
		Where("?TableAlias.token = ?", token).
		Exec(ctx)
	return err
}

// FindLive returns the ledger entry for token only when the entry is still
// flagged valid, has not reached its expiry, and belongs to an active user.
// Every other case, including a missing row, reports record not found.
func (a *tokens) FindLive(ctx context.Context, token string, now time.Time) (*Token, error) {
	record := &Token{}
	err := a.db.NewSelect().
		Model(record).
		Join(`JOIN "users" AS "usr" ON "usr"."id" = ?TableAlias."user_id"`).
		Where("?TableAlias.token = ?", token).
		Where("?TableAlias.is_valid = ?", true).
		Where("?TableAlias.expires_at > ?", now).
		Where(`"usr"."status" = ?`, UserStatusActive).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, repository.NewRecordNotFound()
		}
		return nil, err
	}
	return record, nil
}

// DeleteExpired hard deletes ledger rows whose expiry is in the past.
// Housekeeping only; liveness never depends on it.
func (a *tokens) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := a.db.NewDelete().
		Model((*Token)(nil)).
		Where("?TableAlias.expires_at <= ?", before).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}
