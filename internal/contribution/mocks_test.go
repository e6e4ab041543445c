package contribution

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ExistsContributionForBet(ctx context.Context, betID string) (bool, error) {
	args := m.Called(ctx, betID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ReadJackpot(ctx context.Context, jackpotID string) (*domain.Jackpot, error) {
	args := m.Called(ctx, jackpotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Jackpot), args.Error(1)
}

func (m *MockRepository) CommitContribution(ctx context.Context, c *domain.Contribution, expectedVersion int64) (int64, error) {
	args := m.Called(ctx, c, expectedVersion)
	return args.Get(0).(int64), args.Error(1)
}
