package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/cache"
	"github.com/osse101/JackpotEngine_Go/internal/config"
	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/retry"
	"github.com/osse101/JackpotEngine_Go/mocks"
)

const jackpotsConfigPath = "../../configs/jackpots.json"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Environment:     config.EnvironmentDev,
		LogLevel:        "debug",
		LogFormat:       "text",
		LogDir:          t.TempDir(),
		ServiceName:     "jackpot-engine-test",
		Version:         "test",
		StoreBackend:    config.StoreBackendMemory,
		BetWorkers:      2,
		BetQueueSize:    8,
		RewardCacheSize: 16,
		RewardCacheTTL:  time.Minute,
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "event_deadletter.jsonl"), nil, 0o644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "event_deadletter.jsonl")
	assert.NotContains(t, names, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00"))
	assert.NotContains(t, names, fmt.Sprintf(LogFileNamePattern, "2026-01-03_00-00-00"))
	assert.Contains(t, names, fmt.Sprintf(LogFileNamePattern, "2026-01-04_00-00-00"))
	assert.Contains(t, names, fmt.Sprintf(LogFileNamePattern, "2026-01-12_00-00-00"))
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cfg := testConfig(t)
	logFile, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { logFile.Close() })

	slog.Info("session log message")

	data, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
	assert.Contains(t, string(data), "session log message")
	assert.Contains(t, string(data), "jackpot-engine-test")
}

func TestRetryPolicy(t *testing.T) {
	cfg := testConfig(t)
	assert.Equal(t, retry.DefaultPolicy().MaxAttempts, RetryPolicy(cfg).MaxAttempts)

	cfg.RetryMaxAttempts = 3
	cfg.RetryInitialInterval = time.Millisecond
	policy := RetryPolicy(cfg)
	assert.Equal(t, 3, policy.MaxAttempts)
	assert.Equal(t, time.Millisecond, policy.InitialInterval)
	assert.Equal(t, retry.DefaultPolicy().MaxInterval, policy.MaxInterval)
}

func TestRandomSource_ForceWin(t *testing.T) {
	cfg := testConfig(t)
	cfg.ForceWinForTesting = true

	src := RandomSource(cfg)
	for i := 0; i < 5; i++ {
		assert.Zero(t, src.Sample())
	}
}

func TestOpenStore(t *testing.T) {
	t.Run("memory backend has no event log", func(t *testing.T) {
		storage, err := OpenStore(context.Background(), testConfig(t))
		require.NoError(t, err)
		t.Cleanup(func() { storage.Close() })

		assert.Nil(t, storage.EventLog)
		assert.IsType(t, &cache.RewardCache{}, storage.Store)
		assert.NoError(t, storage.Store.Ping(context.Background()))
	})

	t.Run("sqlite backend migrates and exposes the event log", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StoreBackend = config.StoreBackendSQLite
		cfg.SQLitePath = filepath.Join(t.TempDir(), "jackpot.db")

		storage, err := OpenStore(context.Background(), cfg)
		require.NoError(t, err)
		t.Cleanup(func() { storage.Close() })

		assert.NotNil(t, storage.EventLog)
		assert.FileExists(t, cfg.SQLitePath)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StoreBackend = "cassandra"

		_, err := OpenStore(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownBackend)
	})
}

func TestSyncJackpots(t *testing.T) {
	ctx := context.Background()
	storage, err := OpenStore(ctx, testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	require.NoError(t, SyncJackpots(ctx, jackpotsConfigPath, storage.Store))

	jackpots, err := storage.Store.ListJackpots(ctx)
	require.NoError(t, err)
	assert.Len(t, jackpots, 2)

	// A second sync refreshes policies without resetting anything
	require.NoError(t, SyncJackpots(ctx, jackpotsConfigPath, storage.Store))

	err = SyncJackpots(ctx, filepath.Join(t.TempDir(), "missing.json"), storage.Store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadJackpots)
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := testConfig(t)
	cfg.EventDeadLetterPath = filepath.Join(t.TempDir(), "nested", "deadletter.jsonl")

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	t.Cleanup(func() { publisher.Shutdown(context.Background()) })

	assert.DirExists(t, filepath.Dir(cfg.EventDeadLetterPath))
	assert.NoError(t, RegisterEventHandlers(EventHandlerDependencies{EventBus: bus}))
}

func TestRegisterEventHandlers_SubscribeFailure(t *testing.T) {
	bus := event.NewMemoryBus()
	events := mocks.NewMockEventLogService(t)
	events.On("Subscribe", bus).Return(errors.New("no table"))

	err := RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, EventLogService: events})
	require.Error(t, err)
	assert.Contains(t, err.Error(), SubscriberEventLog)
}

func TestResolveEventSettings(t *testing.T) {
	cfg := &config.Config{EventRetryDelay: 50 * time.Millisecond}

	settings := resolveEventSettings(cfg)
	assert.Equal(t, EventDefaultMaxRetries, settings.maxRetries)
	assert.Equal(t, 50*time.Millisecond, settings.retryDelay)
	assert.Equal(t, EventDefaultDeadLetterPath, settings.deadLetterPath)
}

func TestLocalBetPipeline(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	storage, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, SyncJackpots(ctx, jackpotsConfigPath, storage.Store))

	svc := InitializeServices(cfg, storage.Store, nil)
	user, err := svc.RegisterUser(ctx, "pipeline-user")
	require.NoError(t, err)

	bg := StartBackground(cfg, svc, nil)
	require.Nil(t, bg.Consumer)

	for i := 0; i < 4; i++ {
		require.NoError(t, bg.Publisher.PublishBet(ctx, domain.BetRequest{
			BetID:     fmt.Sprintf("bet-%d", i),
			UserID:    user.ID,
			JackpotID: "jackpot-fixed",
			BetAmount: decimal.NewFromInt(100),
		}))
	}

	// Stopping the pool drains the queued bets before the store is closed
	GracefulShutdown(ctx, ShutdownComponents{Background: bg, JackpotService: svc})

	for i := 0; i < 4; i++ {
		c, err := svc.GetContribution(ctx, fmt.Sprintf("bet-%d", i))
		require.NoError(t, err)
		assert.True(t, c.ContributionAmount.Equal(decimal.NewFromInt(5)))
	}

	j, err := svc.GetJackpot(ctx, "jackpot-fixed")
	require.NoError(t, err)
	assert.Equal(t, "1020.00", j.CurrentPoolValue.StringFixed(domain.MoneyScale))

	require.NoError(t, storage.Close())
}
