package jackpot

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

// recordingPublisher keeps every published event
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) ofType(t event.Type) []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []event.Event
	for _, e := range p.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// blockingPublisher never returns until release is closed
type blockingPublisher struct {
	release chan struct{}
}

func (p *blockingPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	<-p.release
}

// conflictingStore fails the first conflicts commits with a version conflict
type conflictingStore struct {
	repository.Store

	mu        sync.Mutex
	conflicts int
}

func (s *conflictingStore) takeConflict() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conflicts > 0 {
		s.conflicts--
		return true
	}
	return false
}

func (s *conflictingStore) CommitContribution(ctx context.Context, c *domain.Contribution, expectedVersion int64) (int64, error) {
	if s.takeConflict() {
		return 0, domain.ErrConcurrencyConflict
	}
	return s.Store.CommitContribution(ctx, c, expectedVersion)
}

func (s *conflictingStore) CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error) {
	if s.takeConflict() {
		return nil, domain.ErrConcurrencyConflict
	}
	return s.Store.CommitReward(ctx, r, resetPool, expectedVersion)
}
