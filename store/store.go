package store

import (
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/clc-tz/legalbridge-backend/content"
)

// Config holds persistence options
type Config interface {
	GetDSN() string
}

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Models lists every table the application owns, parents before children
// so create order satisfies foreign keys.
func Models() []any {
	return []any{
		(*SchemaVersion)(nil),
		(*auth.User)(nil),
		(*auth.Token)(nil),
		(*content.Service)(nil),
		(*content.Offering)(nil),
		(*content.Testimonial)(nil),
		(*content.Hero)(nil),
		(*content.HeroOption)(nil),
		(*content.About)(nil),
		(*content.Contact)(nil),
		(*content.ContactItem)(nil),
		(*content.LinkList)(nil),
		(*content.LinkItem)(nil),
		(*content.SocialLink)(nil),
		(*content.Announcement)(nil),
		(*content.HowSection)(nil),
		(*content.HowStep)(nil),
	}
}

// Open connects to the sqlite database and registers the model set so
// relations and fixtures resolve by name.
func Open(cfg Config) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	for _, model := range Models() {
		db.RegisterModel(model)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	return db, nil
}
