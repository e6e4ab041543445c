package contribution

import (
	"context"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// Repository is the storage surface the contribution processor needs
type Repository interface {
	ExistsContributionForBet(ctx context.Context, betID string) (bool, error)
	ReadJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error)
	CommitContribution(ctx context.Context, c *domain.Contribution, expectedVersion int64) (int64, error)
}
