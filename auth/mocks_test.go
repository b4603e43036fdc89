package auth_test

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type testConfig struct {
	signingKey string
	ttl        time.Duration
	issuer     string
	audience   []string
}

func (c testConfig) GetSigningKey() string     { return c.signingKey }
func (c testConfig) GetContextKey() string     { return "user" }
func (c testConfig) GetTokenTTL() time.Duration {
	if c.ttl == 0 {
		return 24 * time.Hour
	}
	return c.ttl
}
func (c testConfig) GetAuthScheme() string   { return "Bearer" }
func (c testConfig) GetIssuer() string       { return c.issuer }
func (c testConfig) GetAudience() []string   { return c.audience }
func (c testConfig) GetBcryptCost() int      { return auth.DefaultBcryptCost }

func newTestConfig() testConfig {
	return testConfig{
		signingKey: "test-signing-key",
		issuer:     "test-issuer",
		audience:   []string{"test-audience"},
	}
}

type testIdentity struct {
	id       string
	username string
	email    string
	role     string
}

func (t testIdentity) ID() string       { return t.id }
func (t testIdentity) Username() string { return t.username }
func (t testIdentity) Email() string    { return t.email }
func (t testIdentity) Role() string     { return t.role }

func newTestIdentity() testIdentity {
	return testIdentity{
		id:       uuid.NewString(),
		username: "frank",
		email:    "frank@example.com",
		role:     auth.RoleUser,
	}
}

// memoryLedger is an in memory token ledger guarded by a mutex so the
// concurrency tests exercise the same swap semantics the database gives us.
type memoryLedger struct {
	mu     sync.Mutex
	rows   map[string]*auth.Token
	status map[uuid.UUID]auth.UserStatus
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{
		rows:   map[string]*auth.Token{},
		status: map[uuid.UUID]auth.UserStatus{},
	}
}

func (m *memoryLedger) setUserStatus(id uuid.UUID, status auth.UserStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[id] = status
}

func (m *memoryLedger) CreateTx(ctx context.Context, tx bun.IDB, record *auth.Token, criteria ...repository.InsertCriteria) (*auth.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.IsValid = true
	cp := *record
	m.rows[record.Token] = &cp
	return record, nil
}

func (m *memoryLedger) InvalidateAllForUserTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.UserID == userID {
			row.IsValid = false
		}
	}
	return nil
}

func (m *memoryLedger) Revoke(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row, ok := m.rows[token]; ok {
		row.IsValid = false
	}
	return nil
}

func (m *memoryLedger) FindLive(ctx context.Context, token string, now time.Time) (*auth.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[token]
	if !ok {
		return nil, repository.NewRecordNotFound()
	}
	if !row.Live(now) {
		return nil, repository.NewRecordNotFound()
	}
	if status, ok := m.status[row.UserID]; ok && status != auth.UserStatusActive {
		return nil, repository.NewRecordNotFound()
	}
	cp := *row
	return &cp, nil
}

func (m *memoryLedger) liveCount(userID uuid.UUID, now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, row := range m.rows {
		if row.UserID == userID && row.Live(now) {
			count++
		}
	}
	return count
}

// memoryTxManager serializes transaction bodies the way a database would
type memoryTxManager struct {
	mu sync.Mutex
}

func (m *memoryTxManager) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return f(ctx, bun.Tx{})
	}
}

type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[string]*auth.User{}}
}

func (m *memoryUserStore) add(user *auth.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.Username] = user
	m.users[user.Email] = user
	m.users[user.ID.String()] = user
}

func (m *memoryUserStore) GetByIdentifier(ctx context.Context, identifier string, criteria ...repository.SelectCriteria) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[identifier]; ok {
		return user, nil
	}
	return nil, repository.NewRecordNotFound()
}
