package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/clc-tz/legalbridge-backend/httpapi"
)

type testServerConfig struct{}

func (testServerConfig) GetAddr() string          { return ":0" }
func (testServerConfig) GetCORSOrigins() []string { return []string{"*"} }

type testAuthConfig struct{}

func (testAuthConfig) GetSigningKey() string      { return "test-signing-key-0123456789abcdef" }
func (testAuthConfig) GetContextKey() string      { return "user" }
func (testAuthConfig) GetTokenTTL() time.Duration { return time.Hour }
func (testAuthConfig) GetAuthScheme() string      { return "Bearer" }
func (testAuthConfig) GetIssuer() string          { return "test" }
func (testAuthConfig) GetAudience() []string      { return nil }
func (testAuthConfig) GetBcryptCost() int         { return auth.DefaultBcryptCost }

type stubAuthenticator struct {
	loginResult *auth.LoginResult
	loginErr    error
	claims      auth.AuthClaims
	authErr     error
	loggedOut   []string
}

func (s *stubAuthenticator) Login(ctx context.Context, identifier, password string) (*auth.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, token string) (auth.AuthClaims, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return s.claims, nil
}

func (s *stubAuthenticator) Logout(ctx context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

func claimsFor(id, role string) auth.AuthClaims {
	return &auth.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: id},
		UID:              id,
		UserRole:         role,
	}
}

func newTestServer(t *testing.T, auther auth.Authenticator) *httpapi.Server {
	t.Helper()
	return httpapi.NewServer(testServerConfig{}, testAuthConfig{}, auther, nil, nil, nil)
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubAuthenticator{})

	res, err := srv.App().Test(httptest.NewRequest(http.MethodGet, "/status", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "online", body["status"])
}

func TestLoginSuccess(t *testing.T) {
	auther := &stubAuthenticator{
		loginResult: &auth.LoginResult{
			UserID:   "11111111-1111-1111-1111-111111111111",
			Username: "test",
			Email:    "test@example.com",
			Role:     auth.RoleUser,
			Token:    "signed-token",
		},
	}
	srv := newTestServer(t, auther)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(
		`{"username_or_email": "test", "password": "sekret1234"}`,
	))
	req.Header.Set("Content-Type", "application/json")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "Login successful", body["message"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed-token", user["token"])
	assert.Equal(t, "test", user["username"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := newTestServer(t, &stubAuthenticator{loginErr: auth.ErrInvalidCredentials})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(
		`{"username_or_email": "test", "password": "wrong-password"}`,
	))
	req.Header.Set("Content-Type", "application/json")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	srv := newTestServer(t, &stubAuthenticator{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(
		`{"username_or_email": "test"}`,
	))
	req.Header.Set("Content-Type", "application/json")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLogoutRequiresBearer(t *testing.T) {
	srv := newTestServer(t, &stubAuthenticator{})

	res, err := srv.App().Test(httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLogoutRevokesPresentedToken(t *testing.T) {
	auther := &stubAuthenticator{claims: claimsFor("11111111-1111-1111-1111-111111111111", auth.RoleUser)}
	srv := newTestServer(t, auther)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer signed-token")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"signed-token"}, auther.loggedOut)
}

func TestRejectsWrongScheme(t *testing.T) {
	auther := &stubAuthenticator{claims: claimsFor("11111111-1111-1111-1111-111111111111", auth.RoleUser)}
	srv := newTestServer(t, auther)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Basic signed-token")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRejectsRevokedToken(t *testing.T) {
	srv := newTestServer(t, &stubAuthenticator{authErr: auth.ErrTokenRevoked})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer retired-token")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	auther := &stubAuthenticator{claims: claimsFor("11111111-1111-1111-1111-111111111111", auth.RoleUser)}
	srv := newTestServer(t, auther)

	req := httptest.NewRequest(http.MethodDelete, "/auth/users/22222222-2222-2222-2222-222222222222", nil)
	req.Header.Set("Authorization", "Bearer signed-token")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	adminID := "11111111-1111-1111-1111-111111111111"
	auther := &stubAuthenticator{claims: claimsFor(adminID, auth.RoleAdmin)}
	srv := newTestServer(t, auther)

	req := httptest.NewRequest(http.MethodDelete, "/auth/users/"+adminID, nil)
	req.Header.Set("Authorization", "Bearer signed-token")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestAdminCannotChangeOwnRole(t *testing.T) {
	adminID := "11111111-1111-1111-1111-111111111111"
	auther := &stubAuthenticator{claims: claimsFor(adminID, auth.RoleAdmin)}
	srv := newTestServer(t, auther)

	req := httptest.NewRequest(http.MethodPut, "/auth/users", strings.NewReader(
		`{"users": [{"id": "`+adminID+`", "role": "user"}]}`,
	))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer signed-token")

	res, err := srv.App().Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
