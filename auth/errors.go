package auth

import (
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// ErrMismatchedHashAndPassword is returned when a password does not match its hash
var ErrMismatchedHashAndPassword = errors.New("mismatched password and hash", errors.CategoryAuth).
	WithTextCode("PASSWORD_MISMATCH").
	WithCode(errors.CodeUnauthorized)

// ErrNoEmptyString rejects empty passwords before they reach the hasher
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryBadInput).
	WithTextCode("EMPTY_PASSWORD").
	WithCode(errors.CodeBadRequest)

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryAuth).
	WithTextCode("IDENTITY_NOT_FOUND").
	WithCode(errors.CodeUnauthorized)

// ErrInvalidCredentials is the uniform login failure. Callers deliberately
// cannot tell a bad password apart from an unknown or inactive account.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode("INVALID_CREDENTIALS").
	WithCode(errors.CodeUnauthorized)

// ErrAccountInactive is returned when an account exists but may not authenticate
var ErrAccountInactive = errors.New("account is not active", errors.CategoryAuth).
	WithTextCode("ACCOUNT_INACTIVE").
	WithCode(errors.CodeUnauthorized)

// ErrDuplicateIdentity is returned when a username or email is already taken
var ErrDuplicateIdentity = errors.New("username or email already registered", errors.CategoryConflict).
	WithTextCode("DUPLICATE_IDENTITY").
	WithCode(errors.CodeConflict)

// ErrTokenExpired is returned when a token fails its expiry check
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode("TOKEN_EXPIRED").
	WithCode(errors.CodeUnauthorized)

// ErrTokenRevoked is returned when a token passes signature checks but has no
// live ledger entry. A missing entry and a retired entry are the same outcome.
var ErrTokenRevoked = errors.New("token is revoked", errors.CategoryAuth).
	WithTextCode("TOKEN_REVOKED").
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a token cannot be parsed or verified
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode("TOKEN_MALFORMED").
	WithCode(errors.CodeUnauthorized)

// ErrUnableToDecodeSession unable to decode JWT claims
var ErrUnableToDecodeSession = errors.New("unable to decode session", errors.CategoryAuth).
	WithTextCode("SESSION_DECODE").
	WithCode(errors.CodeUnauthorized)

// ErrForbidden is returned when an authenticated user lacks the required role
var ErrForbidden = errors.New("insufficient role", errors.CategoryAuthz).
	WithTextCode("FORBIDDEN").
	WithCode(errors.CodeForbidden)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTokenExpired) ||
		strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrTokenMalformed) ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// isCredentialFailure reports whether err should collapse into the uniform
// login failure rather than surface its own message.
func isCredentialFailure(err error) bool {
	return errors.Is(err, ErrMismatchedHashAndPassword) ||
		errors.Is(err, ErrIdentityNotFound) ||
		errors.Is(err, ErrAccountInactive) ||
		repository.IsRecordNotFound(err)
}
