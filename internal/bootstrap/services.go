package bootstrap

import (
	"log/slog"

	"github.com/osse101/JackpotEngine_Go/internal/config"
	"github.com/osse101/JackpotEngine_Go/internal/contribution"
	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/jackpot"
	"github.com/osse101/JackpotEngine_Go/internal/outcome"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
	"github.com/osse101/JackpotEngine_Go/internal/retry"
	"github.com/osse101/JackpotEngine_Go/internal/reward"
)

// forcedWinDraw is below any positive chance, so every evaluation wins
const forcedWinDraw = 0

// InitializeServices builds the jackpot facade over store
func InitializeServices(cfg *config.Config, store repository.Store, publisher event.Publisher) jackpot.Service {
	contributions := contribution.NewService(store)
	rewards := reward.NewService(store, RandomSource(cfg))
	svc := jackpot.NewService(store, contributions, rewards, publisher, RetryPolicy(cfg))

	slog.Info(LogMsgServicesInitialized)
	return svc
}

// RandomSource picks the reward draw source. A zero seed is seeded from the clock.
func RandomSource(cfg *config.Config) outcome.RandomSource {
	if cfg.ForceWinForTesting {
		slog.Warn(LogMsgForceWinEnabled)
		return outcome.NewFixedSource(forcedWinDraw)
	}
	return outcome.NewRandomSource(cfg.RandomSeed)
}

// RetryPolicy overlays the configured conflict retry settings on the defaults
func RetryPolicy(cfg *config.Config) retry.Policy {
	policy := retry.DefaultPolicy()
	if cfg.RetryMaxAttempts > 0 {
		policy.MaxAttempts = cfg.RetryMaxAttempts
	}
	if cfg.RetryInitialInterval > 0 {
		policy.InitialInterval = cfg.RetryInitialInterval
	}
	if cfg.RetryMaxInterval > 0 {
		policy.MaxInterval = cfg.RetryMaxInterval
	}
	return policy
}
