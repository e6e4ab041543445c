package eventlog

import (
	"context"
	"time"
)

// Record is a contribution or reward event ready to be persisted. UserID and
// JackpotID are lifted out of the payload so the log can be filtered on them.
type Record struct {
	EventType string
	UserID    *int64
	JackpotID *string
	Payload   map[string]interface{}
	Metadata  map[string]interface{}
}

// Event is a persisted Record
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	UserID    *int64                 `json:"user_id,omitempty"`
	JackpotID *string                `json:"jackpot_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventFilter narrows GetEvents; nil fields do not filter
type EventFilter struct {
	UserID    *int64
	JackpotID *string
	EventType *string
	Since     *time.Time
	Until     *time.Time
	Limit     int
}

// Repository persists the event log
type Repository interface {
	LogEvent(ctx context.Context, rec Record) error

	// GetEvents returns matching events newest first
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// DeleteEventsBefore removes events created before cutoff and reports how many went
	DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
