package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет все непримененные миграции из fsys к PostgreSQL
func Up(ctx context.Context, db *sql.DB, fsys fs.FS, logger Logger) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("migrator: create provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrator: apply migrations: %w", err)
	}

	for _, r := range results {
		logger.Info("Migration applied: %s (%s)", r.Source.Path, r.Duration)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("migrator: get db version: %w", err)
	}
	logger.Info("Database schema version: %d (applied now: %d)", version, len(results))

	return nil
}
