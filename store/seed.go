package store

import (
	"context"
	"embed"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dbfixture"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/clc-tz/legalbridge-backend/content"
)

//go:embed fixtures/*.yml
var fixturesFS embed.FS

// SeedConfig holds the bootstrap admin credentials
type SeedConfig interface {
	GetAdminUsername() string
	GetAdminEmail() string
	GetAdminPassword() string
}

// Seeder bootstraps a fresh database with the admin account and the
// starter content fixtures
type Seeder struct {
	db     *bun.DB
	cfg    SeedConfig
	logger Logger
}

func NewSeeder(db *bun.DB, cfg SeedConfig, logger Logger) *Seeder {
	return &Seeder{db: db, cfg: cfg, logger: logger}
}

// Seed runs both bootstrap steps; each is a no-op once data exists
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}
	return s.seedContent(ctx)
}

// seedAdmin creates the first admin account when the users table is empty.
// The ID is derived from the email so repeat bootstraps converge.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.db.NewSelect().Model((*auth.User)(nil)).Count(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to count users")
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(s.cfg.GetAdminPassword())
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to hash admin password")
	}

	admin := &auth.User{
		Username:     s.cfg.GetAdminUsername(),
		Email:        s.cfg.GetAdminEmail(),
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
		Status:       auth.UserStatusActive,
	}

	if id, err := hashid.NewUUID(admin.Email); err == nil {
		admin.ID = id
	}

	if _, err := s.db.NewInsert().Model(admin).Exec(ctx); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to seed admin user")
	}

	s.logger.Info("seeded initial admin account", "username", admin.Username, "email", admin.Email)

	return nil
}

// seedContent loads the starter content fixtures into an empty database
func (s *Seeder) seedContent(ctx context.Context) error {
	count, err := s.db.NewSelect().Model((*content.SocialLink)(nil)).Count(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to count social links")
	}
	if count > 0 {
		return nil
	}

	fixture := dbfixture.New(s.db)
	if err := fixture.Load(ctx, fixturesFS, "fixtures/content.yml"); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to load content fixtures")
	}

	s.logger.Info("seeded starter content fixtures")

	return nil
}
