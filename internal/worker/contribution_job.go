package worker

import (
	"context"
	"errors"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/metrics"
)

// BetProcessor applies a bet's contribution
type BetProcessor interface {
	ProcessBet(ctx context.Context, bet domain.BetRequest) (*domain.Contribution, error)
}

// ContributionJob processes one queued bet
type ContributionJob struct {
	processor BetProcessor
	bet       domain.BetRequest
	requestID string
}

// NewContributionJob creates a job for bet. requestID correlates logs with the submitting request.
func NewContributionJob(processor BetProcessor, bet domain.BetRequest, requestID string) *ContributionJob {
	return &ContributionJob{processor: processor, bet: bet, requestID: requestID}
}

// Bet returns the queued bet
func (j *ContributionJob) Bet() domain.BetRequest {
	return j.bet
}

// Process executes the contribution
func (j *ContributionJob) Process(ctx context.Context) error {
	if j.requestID != "" {
		ctx = logger.WithRequestID(ctx, j.requestID)
	}
	log := logger.FromContext(ctx)

	c, err := j.processor.ProcessBet(ctx, j.bet)
	if err != nil {
		reason := FailureReason(err)
		metrics.BetsFailed.WithLabelValues(reason).Inc()
		log.Warn(LogMsgBetFailed, "betID", j.bet.BetID, "jackpotID", j.bet.JackpotID, "reason", reason, "error", err)
		return err
	}

	log.Debug(LogMsgBetProcessed, "betID", c.BetID, "jackpotID", c.JackpotID, "pool", c.CurrentJackpotAmount)
	return nil
}

// FailureReason classifies a bet processing error for metrics
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ReasonValidation
	case errors.Is(err, domain.ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, domain.ErrConfiguration):
		return ReasonConfiguration
	case errors.Is(err, domain.ErrConcurrencyConflict), errors.Is(err, domain.ErrRetriesExhausted):
		return ReasonConflict
	default:
		return ReasonInternal
	}
}
