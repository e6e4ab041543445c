// Package sqlite is the embedded single-file storage backend built on modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/osse101/JackpotEngine_Go/internal/database"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// querier is the query surface shared by *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Open opens (creating if needed) the database at path in WAL mode and applies migrations
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateDir, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		path, BusyTimeoutMillis)
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	db.SetMaxOpenConns(MaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}

	if err := database.RunMigrations(ctx, db, goose.DialectSQLite3); err != nil {
		db.Close()
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgOpened, "path", path)
	return db, nil
}

// safeRollback rolls back a transaction and logs any error other than ErrTxDone
func safeRollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Error(LogMsgFailedToRollback, "error", err)
	}
}

// uniqueViolation returns the "table.column" of a violated unique index, or ""
func uniqueViolation(err error) string {
	var se *sqlite.Error
	if !errors.As(err, &se) || se.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return ""
	}
	msg := se.Error()
	i := strings.Index(msg, uniqueFailedPrefix)
	if i < 0 {
		return ""
	}
	column := msg[i+len(uniqueFailedPrefix):]
	if j := strings.IndexAny(column, " ,("); j >= 0 {
		column = column[:j]
	}
	return column
}

func exists(ctx context.Context, q querier, query string, arg any) (bool, error) {
	var ok bool
	if err := q.QueryRowContext(ctx, query, arg).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
