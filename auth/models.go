package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UserRole is the user's role
type UserRole = string

const (
	// RoleUser is a regular account (i.e. view)
	RoleUser UserRole = "user"
	// RoleAdmin is an admin account (i.e. view, edit, create, delete)
	RoleAdmin UserRole = "admin"
)

// UserStatus is the lifecycle state of an account
type UserStatus = string

const (
	// UserStatusActive may authenticate and keep live sessions
	UserStatusActive UserStatus = "active"
	// UserStatusPending is awaiting activation
	UserStatusPending UserStatus = "pending"
	// UserStatusOngoing is mid onboarding
	UserStatusOngoing UserStatus = "ongoing"
	// UserStatusInactive has been disabled
	UserStatusInactive UserStatus = "inactive"
	// UserStatusDeleted is a soft deleted account; the row stays for audit
	UserStatusDeleted UserStatus = "deleted"
)

// User is the user model
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash" json:"-"`
	Role          UserRole   `bun:"role,notnull" json:"role,omitempty"`
	Status        UserStatus `bun:"status,notnull" json:"status,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// CanAuthenticate reports whether the account may start or keep a session
func (u *User) CanAuthenticate() bool {
	return u.Status == UserStatusActive
}

// statusAuthError maps a user status to the auth error it should produce,
// or nil when the account is allowed to authenticate.
func statusAuthError(status UserStatus) error {
	switch status {
	case UserStatusActive:
		return nil
	case UserStatusDeleted:
		return ErrIdentityNotFound
	default:
		return ErrAccountInactive
	}
}

func prepareUserDefaults(user *User) {
	if user == nil {
		return
	}
	if user.Role == "" {
		user.Role = RoleUser
	}
	if user.Status == "" {
		user.Status = UserStatusActive
	}
}

// Token is one ledger row for an issued session token. A token is live only
// while is_valid is set, its expiry is in the future, and its user is active.
type Token struct {
	bun.BaseModel `bun:"table:tokens,alias:tkn"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id,omitempty"`
	User          *User      `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	Token         string     `bun:"token,notnull,unique" json:"token,omitempty"`
	ExpiresAt     time.Time  `bun:"expires_at,notnull" json:"expires_at,omitempty"`
	IsValid       bool       `bun:"is_valid" json:"is_valid"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Live reports whether the ledger row still backs a usable session at now.
// The expiry boundary is exclusive: a token is dead at its exact expiry.
func (t *Token) Live(now time.Time) bool {
	return t.IsValid && now.Before(t.ExpiresAt)
}
