package auth

import (
	"context"
	"reflect"
)

// LoginResult carries the session token plus the identity it was minted for
type LoginResult struct {
	UserID   string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Token    string   `json:"token"`
}

// ledgerRevoker is the slice of the token ledger logout needs
type ledgerRevoker interface {
	Revoke(ctx context.Context, token string) error
}

// Auther joins the identity provider, the token issuer, and the verifier
// into the authentication surface the rest of the application uses.
type Auther struct {
	provider IdentityProvider
	issuer   *TokenIssuer
	verifier *TokenVerifier
	revoker  ledgerRevoker
	logger   Logger
}

// NewAuthenticator returns a new Auther
func NewAuthenticator(provider IdentityProvider, issuer *TokenIssuer, verifier *TokenVerifier, revoker ledgerRevoker) *Auther {
	return &Auther{
		provider: provider,
		issuer:   issuer,
		verifier: verifier,
		revoker:  revoker,
		logger:   defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

var _ Authenticator = (*Auther)(nil)

// Login verifies the credentials and mints a fresh session token. Any
// credential failure, unknown account, bad password, or inactive status,
// collapses into the same uniform error.
func (s *Auther) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	identity, err := s.provider.VerifyIdentity(ctx, identifier, password)
	if err != nil {
		s.logger.Error("Login verify identity error", "identifier", identifier, "error", err)
		if isCredentialFailure(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Login identity is nil or zero value")
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(ctx, identity)
	if err != nil {
		s.logger.Error("Login failed to issue token", "error", err)
		return nil, err
	}

	return &LoginResult{
		UserID:   identity.ID(),
		Username: identity.Username(),
		Email:    identity.Email(),
		Role:     identity.Role(),
		Token:    token,
	}, nil
}

// Authenticate checks a presented token against both the signature and the
// ledger, returning its claims when the session is still live
func (s *Auther) Authenticate(ctx context.Context, token string) (AuthClaims, error) {
	return s.verifier.Verify(ctx, token)
}

// Logout retires the presented token. Logging out twice, or with a token
// that never existed, succeeds quietly.
func (s *Auther) Logout(ctx context.Context, token string) error {
	return s.revoker.Revoke(ctx, token)
}

// IdentityFromClaims loads a fresh identity for previously verified claims
func (s *Auther) IdentityFromClaims(ctx context.Context, claims AuthClaims) (Identity, error) {
	if claims == nil {
		return nil, ErrUnableToDecodeSession
	}
	return s.provider.FindIdentityByIdentifier(ctx, claims.UserID())
}
