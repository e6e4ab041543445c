package reward

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// Repository is the storage surface the reward evaluator needs
type Repository interface {
	ExistsJackpot(ctx context.Context, jackpotID string) (bool, error)
	ExistsUser(ctx context.Context, userID int64) (bool, error)
	ExistsContributionForBet(ctx context.Context, betID string) (bool, error)

	ReadJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error)

	FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error)
	ExistsRewardForJackpot(ctx context.Context, jackpotID string) (bool, error)
	CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error)
}
