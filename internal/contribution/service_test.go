package contribution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedJackpot(pool string, version int64) *domain.Jackpot {
	return &domain.Jackpot{
		ID:               "jp-fixed",
		InitialPoolValue: d("1000"),
		CurrentPoolValue: d(pool),
		Contribution:     domain.FixedContribution{Percentage: d("5")},
		Reward:           domain.FixedReward{Chance: d("1")},
		Version:          version,
	}
}

func newTestService(repo Repository) *service {
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc
}

func TestProcessContribution_FixedPolicy(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("ExistsContributionForBet", ctx, "bet-1").Return(false, nil)
	repo.On("ReadJackpot", ctx, "jp-fixed").Return(fixedJackpot("1000", 3), nil)
	repo.On("CommitContribution", ctx, mock.MatchedBy(func(c *domain.Contribution) bool {
		return c.ContributionAmount.Equal(d("5")) && c.CurrentJackpotAmount.Equal(d("1005"))
	}), int64(3)).Return(int64(4), nil)

	c, err := svc.ProcessContribution(ctx, "bet-1", 7, "jp-fixed", d("100"))

	require.NoError(t, err)
	assert.Equal(t, "bet-1", c.BetID)
	assert.Equal(t, int64(7), c.UserID)
	assert.Equal(t, "5.00", c.ContributionAmount.StringFixed(2))
	assert.Equal(t, "1005.00", c.CurrentJackpotAmount.StringFixed(2))
	assert.True(t, c.StakeAmount.Equal(d("100")))
	assert.False(t, c.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestProcessContribution_StakeRoundedToCents(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("ExistsContributionForBet", ctx, "bet-cents").Return(false, nil)
	repo.On("ReadJackpot", ctx, "jp-fixed").Return(fixedJackpot("1000", 0), nil)
	repo.On("CommitContribution", ctx, mock.MatchedBy(func(c *domain.Contribution) bool {
		return c.StakeAmount.String() == "100.01"
	}), int64(0)).Return(int64(1), nil)

	c, err := svc.ProcessContribution(ctx, "bet-cents", 7, "jp-fixed", d("100.005"))

	require.NoError(t, err)
	assert.Equal(t, "100.01", c.StakeAmount.String())
	assert.Equal(t, "5.00", c.ContributionAmount.StringFixed(2))
	assert.Equal(t, "1005.00", c.CurrentJackpotAmount.StringFixed(2))
	repo.AssertExpectations(t)
}

func TestProcessContribution_VariablePolicy(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	jackpot := &domain.Jackpot{
		ID:               "jp-var",
		InitialPoolValue: d("2000"),
		CurrentPoolValue: d("2000"),
		Contribution:     domain.VariableContribution{BasePercentage: d("10"), DecayRate: d("0.1")},
		Reward:           domain.FixedReward{Chance: d("1")},
	}

	repo.On("ExistsContributionForBet", ctx, "bet-var").Return(false, nil)
	repo.On("ReadJackpot", ctx, "jp-var").Return(jackpot, nil)
	repo.On("CommitContribution", ctx, mock.Anything, int64(0)).Return(int64(1), nil)

	c, err := svc.ProcessContribution(ctx, "bet-var", 1, "jp-var", d("100"))

	require.NoError(t, err)
	assert.Equal(t, "9.80", c.ContributionAmount.StringFixed(2))
	assert.Equal(t, "2009.80", c.CurrentJackpotAmount.StringFixed(2))
}

func TestProcessContribution_Validation(t *testing.T) {
	tests := []struct {
		name      string
		betID     string
		userID    int64
		jackpotID string
		stake     string
		wantErr   error
	}{
		{"empty bet", "", 1, "jp", "10", domain.ErrBetIDRequired},
		{"whitespace bet", "   ", 1, "jp", "10", domain.ErrBetIDRequired},
		{"missing user", "bet", 0, "jp", "10", domain.ErrUserIDRequired},
		{"empty jackpot", "bet", 1, "\t", "10", domain.ErrJackpotIDMissing},
		{"negative stake", "bet", 1, "jp", "-0.01", domain.ErrStakeNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newTestService(repo)

			_, err := svc.ProcessContribution(context.Background(), tt.betID, tt.userID, tt.jackpotID, d(tt.stake))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
			repo.AssertNotCalled(t, "ReadJackpot", mock.Anything, mock.Anything)
		})
	}
}

func TestProcessContribution_ZeroStakeAccepted(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("ExistsContributionForBet", ctx, "bet-zero").Return(false, nil)
	repo.On("ReadJackpot", ctx, "jp-fixed").Return(fixedJackpot("1000", 0), nil)
	repo.On("CommitContribution", ctx, mock.Anything, int64(0)).Return(int64(1), nil)

	c, err := svc.ProcessContribution(ctx, "bet-zero", 1, "jp-fixed", decimal.Zero)

	require.NoError(t, err)
	assert.Equal(t, "0.01", c.ContributionAmount.StringFixed(2))
}

func TestProcessContribution_DuplicateBet(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("ExistsContributionForBet", ctx, "bet-dup").Return(true, nil)

	_, err := svc.ProcessContribution(ctx, "bet-dup", 1, "jp-fixed", d("10"))

	assert.ErrorIs(t, err, domain.ErrDuplicateBet)
	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "ReadJackpot", mock.Anything, mock.Anything)
}

func TestProcessContribution_JackpotNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("ExistsContributionForBet", ctx, "bet-1").Return(false, nil)
	repo.On("ReadJackpot", ctx, "missing").Return(nil, domain.ErrJackpotNotFound)

	_, err := svc.ProcessContribution(ctx, "bet-1", 1, "missing", d("10"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "CommitContribution", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessContribution_Misconfigured(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	broken := fixedJackpot("1000", 0)
	broken.Contribution = nil

	repo.On("ExistsContributionForBet", ctx, "bet-1").Return(false, nil)
	repo.On("ReadJackpot", ctx, "jp-fixed").Return(broken, nil)

	_, err := svc.ProcessContribution(ctx, "bet-1", 1, "jp-fixed", d("10"))

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestProcessContribution_Conflict(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("ExistsContributionForBet", ctx, "bet-1").Return(false, nil)
	repo.On("ReadJackpot", ctx, "jp-fixed").Return(fixedJackpot("1000", 9), nil)
	repo.On("CommitContribution", ctx, mock.Anything, int64(9)).Return(int64(0), domain.ErrConcurrencyConflict)

	c, err := svc.ProcessContribution(ctx, "bet-1", 1, "jp-fixed", d("10"))

	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
}

func TestProcessContribution_StoreError(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	repo.On("ExistsContributionForBet", ctx, "bet-1").Return(false, dbErr)

	_, err := svc.ProcessContribution(ctx, "bet-1", 1, "jp-fixed", d("10"))

	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), ErrContextFailedToCheckBet)
}
