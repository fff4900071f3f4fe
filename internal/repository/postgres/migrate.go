package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"muto-jobboard/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationFiles lists the embedded schema files in apply order.
func MigrationFiles() ([]string, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Migrate applies every embedded schema file. Files are written to be
// idempotent (IF NOT EXISTS), so re-running is safe.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	names, err := MigrationFiles()
	if err != nil {
		return err
	}

	for _, name := range names {
		sql, err := migrationFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		logger.Log.Info("Applied migration", "file", name)
	}
	return nil
}
