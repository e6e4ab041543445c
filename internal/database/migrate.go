package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// MigrationsFS returns the migration files for dialect
func MigrationsFS(dialect goose.Dialect) (fs.FS, error) {
	var dir string
	switch dialect {
	case goose.DialectPostgres:
		dir = MigrationsDirPostgres
	case goose.DialectSQLite3:
		dir = MigrationsDirSQLite
	default:
		return nil, fmt.Errorf("%s: %s", ErrMsgUnsupportedDialect, dialect)
	}
	return fs.Sub(migrationsFS, dir)
}

// RunMigrations applies every pending embedded migration for dialect
func RunMigrations(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	fsys, err := MigrationsFS(dialect)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied, "dialect", dialect, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// RunPostgresMigrations applies the postgres migrations through a pgx pool
func RunPostgresMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return RunMigrations(ctx, db, goose.DialectPostgres)
}
