package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"reflect"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SchemaVersion records the definition each table was created with, so a
// changed model is visible as drift instead of failing silently.
type SchemaVersion struct {
	bun.BaseModel    `bun:"table:schema_versions,alias:scv"`
	ID               uuid.UUID  `bun:"id,pk,nullzero,type:uuid"`
	TableName        string     `bun:"table_name,notnull"`
	SchemaHash       string     `bun:"schema_hash,notnull"`
	SchemaDefinition string     `bun:"schema_definition,notnull"`
	CreatedAt        *time.Time `bun:"created_at,nullzero,default:current_timestamp"`
}

// Migrator creates tables and keeps the schema version bookkeeping
type Migrator struct {
	db     *bun.DB
	logger Logger
	models []any
}

func NewMigrator(db *bun.DB, logger Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
		models: Models(),
	}
}

// Migrate creates any missing table and records a schema version entry the
// first time a table definition, or a changed definition, is seen.
func (m *Migrator) Migrate(ctx context.Context) error {
	for _, model := range m.models {
		query := m.db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys()

		if _, err := query.Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to create table")
		}
	}

	for _, model := range m.models {
		if _, ok := model.(*SchemaVersion); ok {
			continue
		}
		if err := m.recordSchema(ctx, model); err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) recordSchema(ctx context.Context, model any) error {
	query := m.db.NewCreateTable().
		Model(model).
		IfNotExists().
		WithForeignKeys()

	definition := query.String()
	table := m.db.Table(tableType(model)).Name
	hash := schemaHash(definition)

	latest := &SchemaVersion{}
	err := m.db.NewSelect().
		Model(latest).
		Where("?TableAlias.table_name = ?", table).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)

	if err == nil && latest.SchemaHash == hash {
		return nil
	}

	if err == nil && latest.SchemaHash != hash {
		m.logger.Warn("schema drift detected", "table", table, "previous", latest.SchemaHash, "current", hash)
	}

	record := &SchemaVersion{
		ID:               uuid.New(),
		TableName:        table,
		SchemaHash:       hash,
		SchemaDefinition: definition,
	}

	if _, err := m.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to record schema version")
	}

	m.logger.Info("recorded schema version", "table", table, "hash", hash[:12])

	return nil
}

func tableType(model any) reflect.Type {
	return reflect.TypeOf(model).Elem()
}

// schemaHash hashes a whitespace and case normalized definition so cosmetic
// formatting differences do not register as drift
func schemaHash(definition string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(definition), " "))
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
