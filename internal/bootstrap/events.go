package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/osse101/JackpotEngine_Go/internal/config"
	"github.com/osse101/JackpotEngine_Go/internal/event"
)

// eventSettings are the resilient publisher knobs after defaults are applied
type eventSettings struct {
	maxRetries     int
	retryDelay     time.Duration
	deadLetterPath string
}

func resolveEventSettings(cfg *config.Config) eventSettings {
	return eventSettings{
		maxRetries:     lo.CoalesceOrEmpty(cfg.EventMaxRetries, EventDefaultMaxRetries),
		retryDelay:     lo.CoalesceOrEmpty(cfg.EventRetryDelay, EventDefaultRetryDelay),
		deadLetterPath: lo.CoalesceOrEmpty(cfg.EventDeadLetterPath, EventDefaultDeadLetterPath),
	}
}

// InitializeEventSystem builds the in-process bus that carries contribution and
// reward events, fronted by a publisher that retries and dead-letters failures
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	settings := resolveEventSettings(cfg)
	bus := event.NewMemoryBus()

	publisher, err := event.NewResilientPublisher(bus, settings.maxRetries, settings.retryDelay, settings.deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", settings.maxRetries,
		"retry_delay", settings.retryDelay,
		"deadletter_path", settings.deadLetterPath)

	return bus, publisher, nil
}
