// Package betqueue moves accepted bets from the HTTP surface to the worker
// pool, either through a Kafka topic or directly in process.
package betqueue

import (
	"context"
	"fmt"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/metrics"
	"github.com/osse101/JackpotEngine_Go/internal/worker"
)

// Publisher accepts bets for asynchronous contribution processing
type Publisher interface {
	PublishBet(ctx context.Context, bet domain.BetRequest) error
}

// Enqueuer hands jobs to the worker pool
type Enqueuer interface {
	Enqueue(ctx context.Context, job worker.Job) error
}

// LocalPublisher queues bets straight onto the worker pool
type LocalPublisher struct {
	pool      Enqueuer
	processor worker.BetProcessor
}

// NewLocalPublisher is used when no Kafka brokers are configured
func NewLocalPublisher(pool Enqueuer, processor worker.BetProcessor) *LocalPublisher {
	return &LocalPublisher{pool: pool, processor: processor}
}

// PublishBet blocks while the pool queue is full
func (p *LocalPublisher) PublishBet(ctx context.Context, bet domain.BetRequest) error {
	log := logger.FromContext(ctx)

	job := worker.NewContributionJob(p.processor, bet, logger.GetRequestID(ctx))
	if err := p.pool.Enqueue(ctx, job); err != nil {
		log.Error(LogMsgBetPublishFailed, "betID", bet.BetID, "transport", metrics.TransportLocal, "error", err)
		return fmt.Errorf("%s: %w", ErrContextEnqueueBet, err)
	}

	metrics.BetsEnqueued.WithLabelValues(metrics.TransportLocal).Inc()
	log.Debug(LogMsgBetPublished, "betID", bet.BetID, "transport", metrics.TransportLocal)
	return nil
}
