package db

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed migrations/000001_init.up.sql
var initSchema string

// Migrate applies the embedded schema. All statements are idempotent
// (IF NOT EXISTS), so running it on every startup is safe.
func (db *DB) Migrate(ctx context.Context) error {
	db.logger.Info("applying database schema")

	if _, err := db.ExecContext(ctx, initSchema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
