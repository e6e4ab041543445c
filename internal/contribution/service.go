// Package contribution grows jackpot pools from accepted bets.
package contribution

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/logger"
	"github.com/osse101/JackpotEngine_Go/internal/outcome"
)

// Service applies one bet's contribution to its jackpot
type Service interface {
	// ProcessContribution computes the bet's contribution and commits it together with
	// the grown pool. A lost version race returns domain.ErrConcurrencyConflict with
	// nothing committed; retrying is left to the caller.
	ProcessContribution(ctx context.Context, betID string, userID int64, jackpotID string, stake decimal.Decimal) (*domain.Contribution, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new contribution processor
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ProcessContribution(ctx context.Context, betID string, userID int64, jackpotID string, stake decimal.Decimal) (*domain.Contribution, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgProcessContributionCalled, "betID", betID, "userID", userID, "jackpotID", jackpotID, "stake", stake)

	if err := validateBet(betID, userID, jackpotID, stake); err != nil {
		return nil, err
	}
	stake = stake.Round(domain.MoneyScale)

	exists, err := s.repo.ExistsContributionForBet(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckBet, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateBet, betID)
	}

	jackpot, err := s.repo.ReadJackpot(ctx, jackpotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadJackpot, err)
	}

	amount, err := outcome.ComputeContribution(jackpot.Contribution, stake, jackpot.CurrentPoolValue)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextFailedToCompute, jackpotID, err)
	}

	c := &domain.Contribution{
		BetID:                betID,
		UserID:               userID,
		JackpotID:            jackpotID,
		StakeAmount:          stake,
		ContributionAmount:   amount,
		CurrentJackpotAmount: jackpot.CurrentPoolValue.Add(amount).Round(domain.MoneyScale),
		CreatedAt:            s.now().UTC(),
	}

	version, err := s.repo.CommitContribution(ctx, c, jackpot.Version)
	if err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			log.Debug(LogMsgContributionConflict, "betID", betID, "jackpotID", jackpotID, "expectedVersion", jackpot.Version)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommit, err)
	}

	log.Info(LogMsgContributionApplied,
		"betID", betID,
		"jackpotID", jackpotID,
		"amount", amount,
		"pool", c.CurrentJackpotAmount,
		"version", version)

	return c, nil
}

func validateBet(betID string, userID int64, jackpotID string, stake decimal.Decimal) error {
	if strings.TrimSpace(betID) == "" {
		return domain.ErrBetIDRequired
	}
	if userID <= 0 {
		return domain.ErrUserIDRequired
	}
	if strings.TrimSpace(jackpotID) == "" {
		return domain.ErrJackpotIDMissing
	}
	if stake.IsNegative() {
		return domain.ErrStakeNegative
	}
	return nil
}
