package metrics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// EventMetricsCollector subscribes to jackpot events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Subscribe registers the collector for every jackpot event type
func (e *EventMetricsCollector) Subscribe(bus event.Bus) error {
	bus.Subscribe(event.ContributionApplied, e.HandleEvent)
	bus.Subscribe(event.JackpotWon, e.HandleEvent)
	return nil
}

// HandleEvent counts the event and records the per-jackpot totals it carries
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ContributionApplied:
		err = e.recordContribution(evt)
	case event.JackpotWon:
		err = e.recordReward(evt)
	}
	if err != nil {
		// Metrics never fail the publish
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) recordContribution(evt event.Event) error {
	payload, err := event.DecodePayload[event.ContributionAppliedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(payload.ContributionAmount)
	if err != nil {
		return err
	}
	Contributions.WithLabelValues(payload.JackpotID).Inc()
	ContributionAmount.WithLabelValues(payload.JackpotID).Add(amount.InexactFloat64())
	return nil
}

func (e *EventMetricsCollector) recordReward(evt event.Event) error {
	payload, err := event.DecodePayload[event.JackpotWonPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	Rewards.WithLabelValues(payload.JackpotID).Inc()
	return nil
}
