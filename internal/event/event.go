package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Jackpot event types
const (
	ContributionApplied Type = domain.EventTypeContributionApplied
	JackpotWon          Type = domain.EventTypeJackpotWon
)

// ContributionAppliedPayloadV1 is the typed payload for contribution events.
// Money fields are decimal strings.
type ContributionAppliedPayloadV1 struct {
	BetID                string `json:"bet_id"`
	UserID               int64  `json:"user_id"`
	JackpotID            string `json:"jackpot_id"`
	StakeAmount          string `json:"stake_amount"`
	ContributionAmount   string `json:"contribution_amount"`
	CurrentJackpotAmount string `json:"current_jackpot_amount"`
	Timestamp            int64  `json:"timestamp"`
}

// JackpotWonPayloadV1 is the typed payload for jackpot win events
type JackpotWonPayloadV1 struct {
	BetID        string `json:"bet_id"`
	UserID       int64  `json:"user_id"`
	JackpotID    string `json:"jackpot_id"`
	RewardAmount string `json:"reward_amount"`
	Timestamp    int64  `json:"timestamp"`
}

// NewContributionAppliedEvent creates a contribution event from a committed contribution
func NewContributionAppliedEvent(c *domain.Contribution) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ContributionApplied,
		Payload: ContributionAppliedPayloadV1{
			BetID:                c.BetID,
			UserID:               c.UserID,
			JackpotID:            c.JackpotID,
			StakeAmount:          c.StakeAmount.StringFixed(domain.MoneyScale),
			ContributionAmount:   c.ContributionAmount.StringFixed(domain.MoneyScale),
			CurrentJackpotAmount: c.CurrentJackpotAmount.StringFixed(domain.MoneyScale),
			Timestamp:            c.CreatedAt.Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyJackpotID: c.JackpotID,
		},
	}
}

// NewJackpotWonEvent creates a win event from a committed reward
func NewJackpotWonEvent(r *domain.Reward) Event {
	ts := r.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    JackpotWon,
		Payload: JackpotWonPayloadV1{
			BetID:        r.BetID,
			UserID:       r.UserID,
			JackpotID:    r.JackpotID,
			RewardAmount: r.JackpotRewardAmount.StringFixed(domain.MoneyScale),
			Timestamp:    ts.Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyJackpotID: r.JackpotID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
