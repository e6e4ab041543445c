package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/JackpotEngine_Go/internal/cache"
	"github.com/osse101/JackpotEngine_Go/internal/config"
	"github.com/osse101/JackpotEngine_Go/internal/database"
	"github.com/osse101/JackpotEngine_Go/internal/database/memory"
	"github.com/osse101/JackpotEngine_Go/internal/database/postgres"
	"github.com/osse101/JackpotEngine_Go/internal/database/redis"
	"github.com/osse101/JackpotEngine_Go/internal/database/sqlite"
	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

// Storage is the opened backend.
// EventLog is nil for backends without an events table (memory, redis).
type Storage struct {
	Store    repository.Store
	EventLog eventlog.Repository
	Cache    *cache.RewardCache
}

// Close releases the underlying connection or pool
func (s *Storage) Close() error {
	return s.Store.Close()
}

// OpenStore opens the configured backend, applies its migrations and wraps it
// in the reward cache
func OpenStore(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var (
		store    repository.Store
		eventLog eventlog.Repository
	)

	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		store = memory.NewStore()

	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPostgres, err)
		}
		if err := database.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		store = postgres.NewStore(pool)
		eventLog = postgres.NewEventLogRepository(pool)

	case config.StoreBackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		store = sqlite.NewStore(db)
		eventLog = sqlite.NewEventLogRepository(db)

	case config.StoreBackendRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, StorePingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedPingRedis, err)
		}
		store = redis.NewStore(client, RedisKeyPrefix)

	default:
		return nil, fmt.Errorf("%s %q", ErrMsgUnknownBackend, cfg.StoreBackend)
	}

	if eventLog == nil {
		slog.Info(LogMsgEventLogUnavailable, "store_backend", cfg.StoreBackend)
	}

	cached := cache.NewRewardCache(store, cfg.RewardCacheSize, cfg.RewardCacheTTL)
	slog.Info(LogMsgStoreOpened, "store_backend", cfg.StoreBackend, "reward_cache_size", cfg.RewardCacheSize)

	return &Storage{Store: cached, EventLog: eventLog, Cache: cached}, nil
}
