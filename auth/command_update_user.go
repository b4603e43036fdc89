package auth

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type UpdateUserMessage struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	// Password, when set, rotates the stored hash
	Password string `json:"password,omitempty"`
}

func (e UpdateUserMessage) Type() string { return "user.update" }

type UpdateUserHandler struct {
	repo RepositoryManager
	cost int
}

func NewUpdateUserHandler(repo RepositoryManager) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo, cost: DefaultBcryptCost}
}

// WithBcryptCost sets the work factor used when rotating a password
func (h *UpdateUserHandler) WithBcryptCost(cost int) *UpdateUserHandler {
	if cost > 0 {
		h.cost = cost
	}
	return h
}

func (h *UpdateUserHandler) Execute(ctx context.Context, event UpdateUserMessage) (*User, error) {
	select {
	case <-ctx.Done():
		return nil, goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user update",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *UpdateUserHandler) execute(ctx context.Context, event UpdateUserMessage) (*User, error) {
	if event.ID == uuid.Nil {
		return nil, goerrors.New("user id is required", goerrors.CategoryBadInput)
	}

	var updated *User
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		current, err := h.repo.Users().GetByIdentifierTx(ctx, tx, event.ID.String())
		if err != nil {
			return err
		}

		if event.Username != "" || event.Email != "" {
			username := orDefault(event.Username, current.Username)
			email := orDefault(event.Email, current.Email)

			taken, err := h.repo.Users().IdentifierTakenTx(ctx, tx, username, email, current.ID)
			if err != nil {
				return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check identifier uniqueness")
			}
			if taken {
				return ErrDuplicateIdentity
			}
			current.Username = username
			current.Email = email
		}

		// a role or status change retires any live session so stale
		// privileges cannot ride out an old token
		revokeSessions := false

		if event.Role != "" && event.Role != current.Role {
			role, ok := ParseRole(event.Role)
			if !ok {
				return goerrors.New("unknown role", goerrors.CategoryValidation).
					WithMetadata(map[string]any{"role": event.Role})
			}
			current.Role = role
			revokeSessions = true
		}

		if event.Status != "" && event.Status != current.Status {
			if !IsValidStatus(event.Status) {
				return goerrors.New("unknown status", goerrors.CategoryValidation).
					WithMetadata(map[string]any{"status": event.Status})
			}
			current.Status = event.Status
			revokeSessions = true
		}

		if event.Password != "" {
			hash, err := HashPasswordCost(event.Password, h.cost)
			if err != nil {
				return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid password provided")
			}
			current.PasswordHash = hash
			revokeSessions = true
		}

		if updated, err = h.repo.Users().UpdateTx(ctx, tx, current, repository.UpdateByID(current.ID.String())); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not update user")
		}

		if revokeSessions {
			if err := h.repo.Tokens().InvalidateAllForUserTx(ctx, tx, current.ID); err != nil {
				return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retire user sessions")
			}
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return nil, richErr
		}

		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "user update transaction failed")
	}

	return updated, nil
}

func orDefault(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
