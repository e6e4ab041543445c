package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingEngine      = "Starting jackpot engine"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Store
// =============================================================================

const (
	// RedisKeyPrefix namespaces every key the engine writes
	RedisKeyPrefix = "jackpot:"

	// StorePingTimeout bounds the connectivity check of a freshly opened backend
	StorePingTimeout = 5 * time.Second
)

const (
	LogMsgStoreOpened         = "Store backend opened"
	LogMsgEventLogUnavailable = "Event log disabled for this store backend"
	ErrMsgUnknownBackend      = "unknown store backend"
	ErrMsgFailedOpenPostgres  = "failed to open postgres store"
	ErrMsgFailedMigrate       = "failed to run migrations"
	ErrMsgFailedOpenSQLite    = "failed to open sqlite store"
	ErrMsgFailedPingRedis     = "failed to reach redis"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSyncingJackpots = "Syncing jackpots from JSON config..."
	LogMsgJackpotsSynced  = "Jackpots synced successfully"
	LogMsgJackpotsEmpty   = "Jackpot config lists no jackpots"

	ErrMsgFailedLoadJackpots = "failed to load jackpot config"
	ErrMsgInvalidJackpots    = "invalid jackpot config"
	ErrMsgFailedSyncJackpots = "failed to sync jackpots to store"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgSubscriberRegistered = "Event subscriber registered"
	ErrMsgFailedSubscribe      = "failed to subscribe"
	SubscriberMetrics          = "metrics"
	SubscriberEventLog         = "event log"
)

// =============================================================================
// Services & Background Processing
// =============================================================================

const (
	// EventLogCleanupInterval is how often logged events past retention are purged
	EventLogCleanupInterval = 24 * time.Hour

	TransportKafka = "kafka"
	TransportLocal = "local"
)

const (
	LogMsgServicesInitialized = "Services initialized"
	LogMsgForceWinEnabled     = "FORCE_WIN_FOR_TESTING is enabled, every reward evaluation wins"
	LogMsgBetQueueStarted     = "Bet queue started"
	LogMsgSchedulerStarted    = "Scheduler started"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgConsumerStopFailed         = "Bet consumer stop failed"
	LogMsgBetWriterCloseFailed       = "Bet publisher close failed"
	LogMsgStoreCloseFailed           = "Store close failed"

	ServiceNameJackpot = "jackpot"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
