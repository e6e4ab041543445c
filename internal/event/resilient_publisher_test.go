package event

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// flakyBus fails the calls for which failOn returns true
type flakyBus struct {
	mu     sync.Mutex
	calls  []time.Time
	failOn func(call int) bool
	delay  time.Duration
}

func (b *flakyBus) Publish(ctx context.Context, event Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, time.Now())
	n := len(b.calls)
	b.mu.Unlock()

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	if b.failOn != nil && b.failOn(n) {
		return errors.New("bus unavailable")
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) callTimes() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time(nil), b.calls...)
}

func (b *flakyBus) callCount() int {
	return len(b.callTimes())
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	return entries
}

func wonEvent(betID string) Event {
	return NewJackpotWonEvent(&domain.Reward{
		BetID:               betID,
		UserID:              1,
		JackpotID:           "jp-1",
		JackpotRewardAmount: decimal.RequireFromString("1005"),
		CreatedAt:           time.Now(),
	})
}

func TestResilientPublisher_FirstAttemptSucceeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), wonEvent("bet-1"))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.callCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_RetryRecovers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failOn: func(call int) bool { return call == 1 }}

	rp, err := NewResilientPublisher(bus, 3, 20*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), wonEvent("bet-1"))

	assert.Eventually(t, func() bool { return bus.callCount() == 2 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_ExhaustedRetriesAreDeadLettered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failOn: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), wonEvent("bet-dl"))

	// initial attempt plus three retries
	require.Eventually(t, func() bool { return bus.callCount() == 4 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
	assert.Equal(t, JackpotWon, entries[0].Event.Type)
	assert.Equal(t, 4, entries[0].Attempts)
	assert.Equal(t, "bus unavailable", entries[0].LastError)

	payload, err := DecodePayload[JackpotWonPayloadV1](entries[0].Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, "bet-dl", payload.BetID)
	assert.Equal(t, "1005.00", payload.RewardAmount)
}

func TestResilientPublisher_QueueOverflowGoesStraightToDeadLetter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// no worker running, so the one-slot queue stays full
	rp := &ResilientPublisher{
		bus:        &flakyBus{failOn: func(int) bool { return true }},
		retryQueue: make(chan retryEntry, 1),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	for i := 0; i < 3; i++ {
		rp.PublishWithRetry(context.Background(), wonEvent("bet-overflow"))
	}

	assert.Len(t, rp.retryQueue, 1)
	assert.Len(t, readDeadLetters(t, path), 2)
	require.NoError(t, dl.Close())
}

func TestResilientPublisher_ShutdownFlushesPendingRetries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failOn: func(call int) bool { return call <= 2 }}

	// a long delay keeps both failures waiting in the queue until shutdown
	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), wonEvent("bet-a"))
	rp.PublishWithRetry(context.Background(), wonEvent("bet-b"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Equal(t, 4, bus.callCount())
	assert.Empty(t, readDeadLetters(t, path))
}

func TestResilientPublisher_PublishAfterShutdownIsDeadLettered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failOn: func(int) bool { return true }}

	rp, err := NewResilientPublisher(bus, 3, time.Millisecond, path)
	require.NoError(t, err)
	close(rp.shutdown)
	rp.wg.Wait()

	rp.PublishWithRetry(context.Background(), wonEvent("bet-late"))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Attempts)
}

func TestResilientPublisher_ExponentialBackoff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{failOn: func(call int) bool { return call < 3 }}

	base := 50 * time.Millisecond
	rp, err := NewResilientPublisher(bus, 5, base, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), wonEvent("bet-backoff"))
	require.Eventually(t, func() bool { return bus.callCount() == 3 }, 2*time.Second, 5*time.Millisecond)

	calls := bus.callTimes()
	first := calls[1].Sub(calls[0])
	second := calls[2].Sub(calls[1])
	assert.GreaterOrEqual(t, first, base)
	assert.GreaterOrEqual(t, second, 2*base)
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	bus := &flakyBus{}
	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	const goroutines = 10
	const perGoroutine = 5

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				rp.PublishWithRetry(context.Background(), wonEvent("bet"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, bus.callCount())
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
}
