package db

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"

	"madr/internal/platform/db/migrations"
)

// Migrate applies the embedded goose migrations. The schema owns the
// uniqueness and referential constraints, so concurrent writes racing on
// the same key are rejected by the store rather than by application
// checks alone.
func Migrate(ctx context.Context, pg *Postgres) error {
	sqlDB, err := pg.DB.DB()
	if err != nil {
		return fmt.Errorf("resolve postgres sql db handle: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
