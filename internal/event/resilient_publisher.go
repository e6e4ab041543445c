package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// Publisher is the fire-and-forget publishing surface used by services
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

type retryEntry struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher publishes through a Bus and retries failures in the background
// with exponential delay. Events that exhaust their retries, overflow the retry queue,
// or are still pending at shutdown go to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown  chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewResilientPublisher starts the retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes synchronously once; a failure is queued for retry and never surfaces to the caller
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	entry := retryEntry{event: event, attempt: 1, lastErr: err}

	select {
	case <-p.shutdown:
		log.Warn(LogMsgEventDroppedShutdown, "event_type", event.Type, "error", err)
		p.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case p.retryQueue <- entry:
		log.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", event.Type, "error", err)
		p.writeDeadLetter(entry)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker, giving every pending event one last attempt
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout, "error", ctx.Err())
		return ctx.Err()
	}

	if p.deadLetter != nil {
		return p.deadLetter.Close()
	}
	return nil
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.retry(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

func (p *ResilientPublisher) retry(entry retryEntry) {
	for entry.attempt <= p.maxRetries {
		timer := time.NewTimer(CalculateRetryDelay(p.retryDelay, entry.attempt))
		select {
		case <-timer.C:
		case <-p.shutdown:
			timer.Stop()
			p.finalAttempt(entry)
			return
		}

		err := p.bus.Publish(context.Background(), entry.event)
		entry.attempt++
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
			return
		}
		entry.lastErr = err
		logger.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt)
	p.writeDeadLetter(entry)
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) finalAttempt(entry retryEntry) {
	err := p.bus.Publish(context.Background(), entry.event)
	entry.attempt++
	if err == nil {
		return
	}
	entry.lastErr = err
	p.writeDeadLetter(entry)
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(entry.event, entry.attempt, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}
