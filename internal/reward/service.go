// Package reward decides whether a bet wins its jackpot and commits at most
// one reward per jackpot.
package reward

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/outcome"
)

// Service evaluates bets against their jackpot's reward policy
type Service interface {
	// EvaluateReward returns the bet's reward, or nil when the bet is ineligible,
	// loses the draw, or the jackpot has already been won.
	// Re-evaluating a winning bet returns the same reward.
	EvaluateReward(ctx context.Context, betID string, userID int64, jackpotID string) (*domain.Reward, error)
}

type service struct {
	repo Repository
	rng  outcome.RandomSource
	now  func() time.Time
}

// NewService creates a new reward evaluator drawing from rng
func NewService(repo Repository, rng outcome.RandomSource) Service {
	return &service{repo: repo, rng: rng, now: time.Now}
}

func (s *service) EvaluateReward(ctx context.Context, betID string, userID int64, jackpotID string) (*domain.Reward, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgEvaluateRewardCalled, "betID", betID, "userID", userID, "jackpotID", jackpotID)

	reason, err := s.checkEligibility(ctx, betID, userID, jackpotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedEligibility, err)
	}
	if reason != "" {
		log.Debug(LogMsgNotEligible, "betID", betID, "reason", reason)
		return nil, nil
	}

	existing, err := s.repo.FindRewardForBet(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindReward, err)
	}
	if existing != nil {
		log.Debug(LogMsgExistingRewardForBet, "betID", betID)
		return existing, nil
	}

	jackpot, err := s.repo.ReadJackpot(ctx, jackpotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadJackpot, err)
	}

	if claimed, err := s.jackpotClaimed(ctx, jackpotID); err != nil || claimed {
		return nil, err
	}

	chance, err := outcome.ComputeWinChance(jackpot.Reward, jackpot.CurrentPoolValue)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToComputeOdds, jackpotID, err)
	}

	if !outcome.DecideWin(chance, s.rng) {
		log.Debug(LogMsgRewardDrawLost, "betID", betID, "chance", chance)
		return nil, nil
	}

	// A concurrent evaluation may have committed since the first check
	if claimed, err := s.jackpotClaimed(ctx, jackpotID); err != nil || claimed {
		return nil, err
	}

	return s.commit(ctx, betID, userID, jackpot)
}

func (s *service) commit(ctx context.Context, betID string, userID int64, jackpot *domain.Jackpot) (*domain.Reward, error) {
	log := logger.FromContext(ctx)

	r := &domain.Reward{
		BetID:               betID,
		UserID:              userID,
		JackpotID:           jackpot.ID,
		JackpotRewardAmount: jackpot.CurrentPoolValue,
		CreatedAt:           s.now().UTC(),
	}

	committed, err := s.repo.CommitReward(ctx, r, jackpot.InitialPoolValue, jackpot.Version)
	if errors.Is(err, domain.ErrRewardAlreadyClaimed) {
		// Either this bet or this jackpot won elsewhere; report the bet's own reward if any
		existing, findErr := s.repo.FindRewardForBet(ctx, betID)
		if findErr != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToFindReward, findErr)
		}
		log.Info(LogMsgRewardLostRace, "betID", betID, "jackpotID", jackpot.ID, "ownReward", existing != nil)
		return existing, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitReward, err)
	}

	log.Info(LogMsgRewardCommitted,
		"betID", betID,
		"jackpotID", jackpot.ID,
		"amount", committed.JackpotRewardAmount,
		"resetTo", jackpot.InitialPoolValue)

	return committed, nil
}

func (s *service) jackpotClaimed(ctx context.Context, jackpotID string) (bool, error) {
	claimed, err := s.repo.ExistsRewardForJackpot(ctx, jackpotID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToFindReward, err)
	}
	if claimed {
		logger.FromContext(ctx).Debug(LogMsgJackpotAlreadyClaimed, "jackpotID", jackpotID)
	}
	return claimed, nil
}

// checkEligibility returns a non-empty reason when the bet cannot be evaluated
func (s *service) checkEligibility(ctx context.Context, betID string, userID int64, jackpotID string) (string, error) {
	ok, err := s.repo.ExistsJackpot(ctx, jackpotID)
	if err != nil {
		return "", err
	}
	if !ok {
		return ReasonJackpotMissing, nil
	}

	ok, err = s.repo.ExistsUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if !ok {
		return ReasonUserMissing, nil
	}

	ok, err = s.repo.ExistsContributionForBet(ctx, betID)
	if err != nil {
		return "", err
	}
	if !ok {
		return ReasonContributionMissing, nil
	}
	return "", nil
}
