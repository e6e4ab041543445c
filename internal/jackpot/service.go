// Package jackpot is the application facade over the contribution processor,
// the reward evaluator and the store. Transports call only into this package.
package jackpot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/JackpotEngine_Go/internal/contribution"
	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/event"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/metrics"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
	"github.com/osse101/JackpotEngine_Go/internal/retry"
	"github.com/osse101/JackpotEngine_Go/internal/reward"
)

// Service defines the jackpot operations exposed to transports
type Service interface {
	// ProcessBet applies the bet's contribution, retrying version conflicts
	ProcessBet(ctx context.Context, bet domain.BetRequest) (*domain.Contribution, error)

	// EvaluateReward decides the bet's reward, retrying version conflicts
	EvaluateReward(ctx context.Context, betID string, userID int64, jackpotID string) (*domain.RewardOutcome, error)

	GetJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error)
	ListJackpots(ctx context.Context) ([]domain.Jackpot, error)
	GetContribution(ctx context.Context, betID string) (*domain.Contribution, error)
	GetReward(ctx context.Context, jackpotID, betID string) (*domain.Reward, error)
	ListUserContributions(ctx context.Context, userID int64, limit int) ([]domain.Contribution, error)
	ListUserRewards(ctx context.Context, userID int64, limit int) ([]domain.Reward, error)
	RegisterUser(ctx context.Context, username string) (*domain.User, error)

	Shutdown(ctx context.Context) error
}

type service struct {
	store         repository.Store
	contributions contribution.Service
	rewards       reward.Service
	publisher     event.Publisher
	retryPolicy   retry.Policy
	wg            sync.WaitGroup // Tracks async event publishing for graceful shutdown
}

// NewService creates the jackpot facade. publisher may be nil.
func NewService(store repository.Store, contributions contribution.Service, rewards reward.Service, publisher event.Publisher, retryPolicy retry.Policy) Service {
	return &service{
		store:         store,
		contributions: contributions,
		rewards:       rewards,
		publisher:     publisher,
		retryPolicy:   retryPolicy,
	}
}

func (s *service) ProcessBet(ctx context.Context, bet domain.BetRequest) (*domain.Contribution, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgProcessBetCalled, "betID", bet.BetID, "userID", bet.UserID, "jackpotID", bet.JackpotID)

	c, err := retry.Do(ctx, s.policyFor(metrics.OperationContribution), func(ctx context.Context) (*domain.Contribution, error) {
		return s.contributions.ProcessContribution(ctx, bet.BetID, bet.UserID, bet.JackpotID, bet.BetAmount)
	})
	if err != nil {
		s.recordFailure(ctx, metrics.OperationContribution, err)
		return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToProcessBet, bet.BetID, err)
	}

	s.publishAsync(ctx, event.NewContributionAppliedEvent(c))
	return c, nil
}

func (s *service) EvaluateReward(ctx context.Context, betID string, userID int64, jackpotID string) (*domain.RewardOutcome, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgEvaluateRewardCalled, "betID", betID, "userID", userID, "jackpotID", jackpotID)

	// A bet that already won gets its reward back without a second event
	existing, err := s.store.FindRewardForBet(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindReward, err)
	}
	if existing != nil {
		log.Debug(LogMsgRewardAlreadyKnown, "betID", betID)
		return domain.NewRewardOutcome(betID, existing), nil
	}

	r, err := retry.Do(ctx, s.policyFor(metrics.OperationReward), func(ctx context.Context) (*domain.Reward, error) {
		return s.rewards.EvaluateReward(ctx, betID, userID, jackpotID)
	})
	if err != nil {
		s.recordFailure(ctx, metrics.OperationReward, err)
		return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToEvaluateReward, betID, err)
	}

	if r == nil {
		metrics.RewardEvaluations.WithLabelValues(jackpotID, metrics.OutcomeLost).Inc()
		return domain.NewRewardOutcome(betID, nil), nil
	}

	metrics.RewardEvaluations.WithLabelValues(jackpotID, metrics.OutcomeWon).Inc()
	s.publishAsync(ctx, event.NewJackpotWonEvent(r))
	return domain.NewRewardOutcome(betID, r), nil
}

func (s *service) GetJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error) {
	if strings.TrimSpace(jackpotID) == "" {
		return nil, domain.ErrJackpotIDMissing
	}
	return s.store.ReadJackpot(ctx, jackpotID)
}

func (s *service) ListJackpots(ctx context.Context) ([]domain.Jackpot, error) {
	return s.store.ListJackpots(ctx)
}

func (s *service) GetContribution(ctx context.Context, betID string) (*domain.Contribution, error) {
	if strings.TrimSpace(betID) == "" {
		return nil, domain.ErrBetIDRequired
	}
	c, err := s.store.FindContributionForBet(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindBet, err)
	}
	if c == nil {
		return nil, domain.ErrContributionNotFound
	}
	return c, nil
}

// GetReward returns the bet's reward only when it was won on jackpotID
func (s *service) GetReward(ctx context.Context, jackpotID, betID string) (*domain.Reward, error) {
	if strings.TrimSpace(betID) == "" {
		return nil, domain.ErrBetIDRequired
	}
	r, err := s.store.FindRewardForBet(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindReward, err)
	}
	if r == nil || r.JackpotID != jackpotID {
		return nil, domain.ErrRewardNotFound
	}
	return r, nil
}

func (s *service) ListUserContributions(ctx context.Context, userID int64, limit int) ([]domain.Contribution, error) {
	if userID <= 0 {
		return nil, domain.ErrUserIDRequired
	}
	return s.store.ListContributionsByUser(ctx, userID, limit)
}

func (s *service) ListUserRewards(ctx context.Context, userID int64, limit int) ([]domain.Reward, error) {
	if userID <= 0 {
		return nil, domain.ErrUserIDRequired
	}
	return s.store.ListRewardsByUser(ctx, userID, limit)
}

func (s *service) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrUsernameRequired
	}
	u, err := s.store.CreateUser(ctx, username)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgUserRegistered, "userID", u.ID, "username", u.Username)
	return u, nil
}

// Shutdown waits for in-flight event publishing to finish
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDownService)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgServiceShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgServiceShutdownForced)
		return ctx.Err()
	}
}

// policyFor counts every conflict of operation before handing on to the configured hook
func (s *service) policyFor(operation string) retry.Policy {
	p := s.retryPolicy
	next := p.OnConflict
	p.OnConflict = func(attempt int) {
		metrics.ConcurrencyConflicts.WithLabelValues(operation).Inc()
		if next != nil {
			next(attempt)
		}
	}
	return p
}

func (s *service) recordFailure(ctx context.Context, operation string, err error) {
	if errors.Is(err, domain.ErrRetriesExhausted) {
		metrics.RetriesExhausted.WithLabelValues(operation).Inc()
		logger.FromContext(ctx).Warn(LogMsgRetriesExhausted, "operation", operation, "error", err)
	}
}

// publishAsync detaches from the request's cancellation but keeps its values
func (s *service) publishAsync(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.publisher.PublishWithRetry(context.WithoutCancel(ctx), evt)
	}()
}
