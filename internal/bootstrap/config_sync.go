package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/JackpotEngine_Go/internal/jackpot"
)

// SyncJackpots loads, validates and applies the jackpot configuration file.
// New jackpots are inserted; existing ones get their policies updated while
// their pool value and version are left alone.
func SyncJackpots(ctx context.Context, path string, store jackpot.SyncStore) error {
	slog.Info(LogMsgSyncingJackpots, "path", path)
	loader := jackpot.NewLoader()

	cfg, err := loader.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadJackpots, err)
	}

	if err := loader.Validate(cfg); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidJackpots, err)
	}

	result, err := loader.SyncToStore(ctx, cfg, store)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncJackpots, err)
	}

	if result.JackpotsInserted > 0 || result.JackpotsUpdated > 0 {
		slog.Info(LogMsgJackpotsSynced,
			"inserted", result.JackpotsInserted,
			"updated", result.JackpotsUpdated)
	} else {
		slog.Warn(LogMsgJackpotsEmpty)
	}

	return nil
}
