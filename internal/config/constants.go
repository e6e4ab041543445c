package config

import "time"

// Store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
	StoreBackendSQLite   = "sqlite"
	StoreBackendRedis    = "redis"
)

// StoreBackends lists the accepted STORE_BACKEND values
var StoreBackends = []string{StoreBackendMemory, StoreBackendPostgres, StoreBackendSQLite, StoreBackendRedis}

// Environments
const (
	EnvironmentDev  = "dev"
	EnvironmentProd = "prod"
)

// Configuration file paths
const (
	ConfigPathJackpots = "configs/jackpots.json"
)

// Defaults
const (
	DefaultPort                  = 8080
	DefaultDBMaxConns            = 20
	DefaultDBMaxConnIdleTime     = 5 * time.Minute
	DefaultDBMaxConnLifetime     = time.Hour
	DefaultSQLitePath            = "data/jackpot.db"
	DefaultRedisAddr             = "localhost:6379"
	DefaultBetTopic              = "jackpot-bets"
	DefaultBetGroupID            = "jackpot-service-group"
	DefaultBetWorkers            = 4
	DefaultBetQueueSize          = 1024
	DefaultRewardCacheSize       = 1024
	DefaultRewardCacheTTL        = 10 * time.Minute
	DefaultEventMaxRetries       = 5
	DefaultEventRetryDelay       = 2 * time.Second
	DefaultEventDeadLetterPath   = "logs/event_deadletter.jsonl"
	DefaultEventLogRetentionDays = 30
)

// Error messages
const (
	ErrMsgAPIKeyRequired     = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPort        = "invalid PORT value"
	ErrMsgUnknownBackend     = "unknown STORE_BACKEND"
	ErrMsgForceWinInProd     = "FORCE_WIN_FOR_TESTING cannot be enabled when ENVIRONMENT=prod"
	ErrMsgInvalidRandomSeed  = "invalid RANDOM_SEED value"
	ErrMsgSchemaVersionUnset = "ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)"
	ErrMsgSchemaMismatch     = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgMissingEnvVars     = "missing required environment variables: %s"
)
