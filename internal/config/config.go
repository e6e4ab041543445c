package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port           int
	APIKey         string // API key for authentication
	TrustedProxies []string
	Environment    string
	LogLevel       string
	LogFormat      string
	LogDir         string
	ServiceName    string
	Version        string

	// Store
	StoreBackend      string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	SQLitePath        string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int

	// Conflict retry
	RetryMaxAttempts     int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration

	// Outcome
	RandomSeed         uint64
	ForceWinForTesting bool

	// Bet queue
	KafkaBrokers  []string
	KafkaBetTopic string
	KafkaGroupID  string
	BetWorkers    int
	BetQueueSize  int

	// Reward cache
	RewardCacheSize int
	RewardCacheTTL  time.Duration

	// Events
	EventMaxRetries       int
	EventRetryDelay       time.Duration
	EventDeadLetterPath   string
	EventLogRetentionDays int

	JackpotConfigPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real env vars may be set
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		Environment:    getEnv("ENVIRONMENT", EnvironmentDev),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		ServiceName:    getEnv("SERVICE_NAME", "jackpot-engine"),
		Version:        getEnv("VERSION", "dev"),

		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", StoreBackendPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "jackpot"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		RedisAddr:         getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),

		// Zero values fall back to the retry package defaults
		RetryMaxAttempts:     getEnvAsInt("CONFLICT_RETRY_MAX_ATTEMPTS", 0),
		RetryInitialInterval: getEnvAsDuration("CONFLICT_RETRY_INITIAL_INTERVAL", 0),
		RetryMaxInterval:     getEnvAsDuration("CONFLICT_RETRY_MAX_INTERVAL", 0),

		ForceWinForTesting: getEnvAsBool("FORCE_WIN_FOR_TESTING", false),

		KafkaBrokers:  getEnvAsList("KAFKA_BROKERS"),
		KafkaBetTopic: getEnv("KAFKA_BET_TOPIC", DefaultBetTopic),
		KafkaGroupID:  getEnv("KAFKA_GROUP_ID", DefaultBetGroupID),
		BetWorkers:    getEnvAsInt("BET_WORKERS", DefaultBetWorkers),
		BetQueueSize:  getEnvAsInt("BET_QUEUE_SIZE", DefaultBetQueueSize),

		RewardCacheSize: getEnvAsInt("REWARD_CACHE_SIZE", DefaultRewardCacheSize),
		RewardCacheTTL:  getEnvAsDuration("REWARD_CACHE_TTL", DefaultRewardCacheTTL),

		EventMaxRetries:       getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:       getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath:   getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
		EventLogRetentionDays: getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDays),

		JackpotConfigPath: getEnv("JACKPOT_CONFIG_PATH", ConfigPathJackpots),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if seed := getEnv("RANDOM_SEED", ""); seed != "" {
		cfg.RandomSeed, err = strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRandomSeed, err)
		}
	}

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if !lo.Contains(StoreBackends, cfg.StoreBackend) {
		return nil, fmt.Errorf("%s %q (expected one of %s)", ErrMsgUnknownBackend, cfg.StoreBackend, strings.Join(StoreBackends, ", "))
	}

	if cfg.ForceWinForTesting && cfg.Environment == EnvironmentProd {
		return nil, errors.New(ErrMsgForceWinInProd)
	}

	return cfg, nil
}

// UsesKafka reports whether bets go through Kafka rather than the in-process queue
func (c *Config) UsesKafka() bool {
	return len(c.KafkaBrokers) > 0
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to defaultValue when unset or unparseable
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration falls back to defaultValue when unset or unparseable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	parts := lo.Map(strings.Split(getEnv(key, ""), ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(parts)
}
