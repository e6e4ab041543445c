package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/eventlog"
	"github.com/osse101/JackpotEngine_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
// EventLogService may be nil when the store backend cannot persist events.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
}

type subscriber interface {
	Subscribe(bus event.Bus) error
}

type namedSubscriber struct {
	name string
	sub  subscriber
}

// RegisterEventHandlers attaches every in-process consumer of jackpot events to the bus
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	subs := []namedSubscriber{{SubscriberMetrics, metrics.NewEventMetricsCollector()}}
	if deps.EventLogService != nil {
		subs = append(subs, namedSubscriber{SubscriberEventLog, deps.EventLogService})
	}

	for _, s := range subs {
		if err := s.sub.Subscribe(deps.EventBus); err != nil {
			return fmt.Errorf("%s %s: %w", ErrMsgFailedSubscribe, s.name, err)
		}
		slog.Info(LogMsgSubscriberRegistered, "subscriber", s.name)
	}
	return nil
}
