package auth

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type DeleteUserMessage struct {
	ID uuid.UUID `json:"id"`
}

func (e DeleteUserMessage) Type() string { return "user.delete" }

// DeleteUserHandler soft deletes an account: the row keeps its id, username,
// and email for audit, the password hash is cleared, and every ledger entry
// is retired in the same transaction.
type DeleteUserHandler struct {
	repo RepositoryManager
}

func NewDeleteUserHandler(repo RepositoryManager) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

func (h *DeleteUserHandler) Execute(ctx context.Context, event DeleteUserMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user deletion",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *DeleteUserHandler) execute(ctx context.Context, event DeleteUserMessage) error {
	if event.ID == uuid.Nil {
		return goerrors.New("user id is required", goerrors.CategoryBadInput)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := h.repo.Users().GetByIdentifierTx(ctx, tx, event.ID.String()); err != nil {
			return err
		}

		if _, err := h.repo.Users().SoftDeleteTx(ctx, tx, event.ID); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not soft delete user")
		}

		if err := h.repo.Tokens().InvalidateAllForUserTx(ctx, tx, event.ID); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retire user sessions")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}

		return goerrors.Wrap(err, goerrors.CategoryInternal, "user deletion transaction failed")
	}

	return nil
}
