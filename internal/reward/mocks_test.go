package reward

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ExistsJackpot(ctx context.Context, jackpotID string) (bool, error) {
	args := m.Called(ctx, jackpotID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ExistsUser(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
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

func (m *MockRepository) FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error) {
	args := m.Called(ctx, betID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}

func (m *MockRepository) ExistsRewardForJackpot(ctx context.Context, jackpotID string) (bool, error) {
	args := m.Called(ctx, jackpotID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error) {
	args := m.Called(ctx, r, resetPool, expectedVersion)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}
