package database

import "time"

// Pool sizing
const (
	DefaultMinConnections = 2
	PingTimeout           = 5 * time.Second
)

// Embedded migration directories
const (
	MigrationsDirPostgres = "migrations/postgres"
	MigrationsDirSQLite   = "migrations/sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgUnsupportedDialect      = "unsupported migration dialect"
	ErrMsgFailedToCreateMigrator  = "failed to create migration provider"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Connected to jackpot database"
	LogMsgMigrationApplied                = "Applied migration"
)
