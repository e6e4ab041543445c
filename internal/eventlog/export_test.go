package eventlog

import (
	"context"
	"time"

	"github.com/osse101/JackpotEngine_Go/internal/event"
)

// HandleEvent exposes the bus handler to tests
func HandleEvent(ctx context.Context, s Service, evt event.Event) error {
	return s.(*service).handleEvent(ctx, evt)
}

// NewServiceAt returns a service whose clock is fixed at now
func NewServiceAt(repo Repository, now time.Time) Service {
	return &service{repo: repo, now: func() time.Time { return now }}
}
