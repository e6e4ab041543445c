// Package storetest holds the behaviour every storage backend must share.
// Backend test files call Run with a factory returning a fresh, empty store.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/contribution"
	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/outcome"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
	"github.com/osse101/JackpotEngine_Go/internal/retry"
	"github.com/osse101/JackpotEngine_Go/internal/reward"
)

// Factory returns an empty store; cleanup is registered on t
type Factory func(t *testing.T) repository.Store

// Options tunes the suite for slower backends
type Options struct {
	// Concurrency is the number of parallel writers in the race tests
	Concurrency int
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// FixedJackpot is a 1000-pool, 5% contribution, chance-percent reward jackpot
func FixedJackpot(id, chance string) *domain.Jackpot {
	return &domain.Jackpot{
		ID:               id,
		InitialPoolValue: dec("1000"),
		CurrentPoolValue: dec("1000"),
		Contribution:     domain.FixedContribution{Percentage: dec("5")},
		Reward:           domain.FixedReward{Chance: dec(chance)},
	}
}

// Run executes the full conformance suite
func Run(t *testing.T, newStore Factory, opts Options) {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 20
	}

	t.Run("JackpotLifecycle", func(t *testing.T) { testJackpotLifecycle(t, newStore(t)) })
	t.Run("ConditionalWrite", func(t *testing.T) { testConditionalWrite(t, newStore(t)) })
	t.Run("MoneyScale", func(t *testing.T) { testMoneyScale(t, newStore(t)) })
	t.Run("ContributionCommit", func(t *testing.T) { testContributionCommit(t, newStore(t)) })
	t.Run("RewardCommit", func(t *testing.T) { testRewardCommit(t, newStore(t)) })
	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("ConcurrentContributions", func(t *testing.T) { testConcurrentContributions(t, newStore(t), opts.Concurrency) })
	t.Run("ConcurrentRewards", func(t *testing.T) { testConcurrentRewards(t, newStore(t), opts.Concurrency) })
}

func testJackpotLifecycle(t *testing.T, store repository.Store) {
	ctx := context.Background()

	_, err := store.ReadJackpot(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	jp := &domain.Jackpot{
		ID:               "jp-var",
		InitialPoolValue: dec("2000"),
		CurrentPoolValue: dec("2000"),
		Contribution:     domain.VariableContribution{BasePercentage: dec("10"), DecayRate: dec("0.1")},
		Reward:           domain.VariableReward{BaseChance: dec("0.5"), Increment: dec("2"), Threshold: dec("5000")},
	}
	require.NoError(t, store.UpsertJackpotConfig(ctx, jp))

	exists, err := store.ExistsJackpot(ctx, "jp-var")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := store.ReadJackpot(ctx, "jp-var")
	require.NoError(t, err)
	assert.True(t, got.CurrentPoolValue.Equal(dec("2000")))
	assert.Equal(t, int64(0), got.Version)
	variable, ok := got.Contribution.(domain.VariableContribution)
	require.True(t, ok)
	assert.True(t, variable.DecayRate.Equal(dec("0.1")))

	_, err = store.WriteJackpotIf(ctx, "jp-var", dec("2100.55"), 0)
	require.NoError(t, err)

	// Re-syncing config swaps policies and keeps the pool; the version moves on
	jp.Contribution = domain.FixedContribution{Percentage: dec("3")}
	require.NoError(t, store.UpsertJackpotConfig(ctx, jp))

	got, err = store.ReadJackpot(ctx, "jp-var")
	require.NoError(t, err)
	assert.True(t, got.CurrentPoolValue.Equal(dec("2100.55")), "pool %s", got.CurrentPoolValue)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, domain.PolicyTypeFixed, got.Contribution.Type())

	_, err = store.WriteJackpotIf(ctx, "jp-var", dec("2200"), 1)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict, "a write read under the old policy must lose")

	require.NoError(t, store.UpsertJackpotConfig(ctx, FixedJackpot("jp-a", "1")))
	list, err := store.ListJackpots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "jp-a", list[0].ID)
}

func testConditionalWrite(t *testing.T, store repository.Store) {
	ctx := context.Background()
	require.NoError(t, store.UpsertJackpotConfig(ctx, FixedJackpot("jp-cas", "1")))

	v1, err := store.WriteJackpotIf(ctx, "jp-cas", dec("1005"), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)

	_, err = store.WriteJackpotIf(ctx, "jp-cas", dec("1010"), 0)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)

	got, err := store.ReadJackpot(ctx, "jp-cas")
	require.NoError(t, err)
	assert.True(t, got.CurrentPoolValue.Equal(dec("1005")))
	assert.Equal(t, v1, got.Version)
}

func contributionFor(betID string, userID int64, jackpotID, pool string) *domain.Contribution {
	return &domain.Contribution{
		BetID:                betID,
		UserID:               userID,
		JackpotID:            jackpotID,
		StakeAmount:          dec("100"),
		ContributionAmount:   dec("5"),
		CurrentJackpotAmount: dec(pool),
		CreatedAt:            time.Now().UTC().Truncate(time.Millisecond),
	}
}

func testMoneyScale(t *testing.T, store repository.Store) {
	ctx := context.Background()
	require.NoError(t, store.UpsertJackpotConfig(ctx, FixedJackpot("jp-scale", "1")))

	c := contributionFor("bet-scale", 1, "jp-scale", "1005.005")
	c.StakeAmount = dec("100.005")
	c.ContributionAmount = dec("5.0049")
	_, err := store.CommitContribution(ctx, c, 0)
	require.NoError(t, err)

	got, err := store.FindContributionForBet(ctx, "bet-scale")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "100.01", got.StakeAmount.String())
	assert.Equal(t, "5", got.ContributionAmount.String())
	assert.Equal(t, "1005.01", got.CurrentJackpotAmount.String())

	jp, err := store.ReadJackpot(ctx, "jp-scale")
	require.NoError(t, err)
	assert.Equal(t, "1005.01", jp.CurrentPoolValue.String())
}

func testContributionCommit(t *testing.T, store repository.Store) {
	ctx := context.Background()
	require.NoError(t, store.UpsertJackpotConfig(ctx, FixedJackpot("jp-c", "1")))

	found, err := store.FindContributionForBet(ctx, "bet-1")
	require.NoError(t, err)
	assert.Nil(t, found)

	v, err := store.CommitContribution(ctx, contributionFor("bet-1", 1, "jp-c", "1005.00"), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	found, err = store.FindContributionForBet(ctx, "bet-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "1005.00", found.CurrentJackpotAmount.StringFixed(2))
	assert.Equal(t, int64(1), found.UserID)

	// Stale version: neither pool nor contribution row changes
	_, err = store.CommitContribution(ctx, contributionFor("bet-2", 1, "jp-c", "1010.00"), 0)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
	exists, err := store.ExistsContributionForBet(ctx, "bet-2")
	require.NoError(t, err)
	assert.False(t, exists)

	// Duplicate bet: nothing commits
	_, err = store.CommitContribution(ctx, contributionFor("bet-1", 1, "jp-c", "1010.00"), 1)
	assert.ErrorIs(t, err, domain.ErrDuplicateBet)
	jp, err := store.ReadJackpot(ctx, "jp-c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), jp.Version)
	assert.True(t, jp.CurrentPoolValue.Equal(dec("1005")))

	_, err = store.CommitContribution(ctx, contributionFor("bet-3", 2, "jp-c", "1010.00"), 1)
	require.NoError(t, err)

	byJackpot, err := store.ListContributionsByJackpot(ctx, "jp-c", 10)
	require.NoError(t, err)
	assert.Len(t, byJackpot, 2)

	byUser, err := store.ListContributionsByUser(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "bet-3", byUser[0].BetID)
}

func testRewardCommit(t *testing.T, store repository.Store) {
	ctx := context.Background()
	require.NoError(t, store.UpsertJackpotConfig(ctx, FixedJackpot("jp-r", "100")))
	_, err := store.CommitContribution(ctx, contributionFor("bet-w", 7, "jp-r", "1005.00"), 0)
	require.NoError(t, err)

	r := &domain.Reward{
		BetID:               "bet-w",
		UserID:              7,
		JackpotID:           "jp-r",
		JackpotRewardAmount: dec("1005.00"),
		CreatedAt:           time.Now().UTC().Truncate(time.Millisecond),
	}

	_, err = store.CommitReward(ctx, r, dec("1000"), 0)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)

	committed, err := store.CommitReward(ctx, r, dec("1000"), 1)
	require.NoError(t, err)
	assert.Equal(t, "1005.00", committed.JackpotRewardAmount.StringFixed(2))

	jp, err := store.ReadJackpot(ctx, "jp-r")
	require.NoError(t, err)
	assert.True(t, jp.CurrentPoolValue.Equal(dec("1000")))
	assert.Equal(t, int64(2), jp.Version)

	for _, check := range []func() (bool, error){
		func() (bool, error) { return store.ExistsRewardForBet(ctx, "bet-w") },
		func() (bool, error) { return store.ExistsRewardForJackpot(ctx, "jp-r") },
	} {
		ok, err := check()
		require.NoError(t, err)
		assert.True(t, ok)
	}

	again := *r
	again.BetID = "bet-other"
	_, err = store.CommitReward(ctx, &again, dec("1000"), 2)
	assert.ErrorIs(t, err, domain.ErrRewardAlreadyClaimed)

	found, err := store.FindRewardForBet(ctx, "bet-w")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "jp-r", found.JackpotID)

	missing, err := store.FindRewardForBet(ctx, "bet-other")
	require.NoError(t, err)
	assert.Nil(t, missing)

	rewards, err := store.ListRewardsByUser(ctx, 7, 0)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func testUsers(t *testing.T, store repository.Store) {
	ctx := context.Background()

	u, err := store.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.Positive(t, u.ID)
	assert.True(t, u.Enabled)

	_, err = store.CreateUser(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	got, err := store.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	exists, err := store.ExistsUser(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = store.GetUser(ctx, u.ID+1000)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// testConcurrentContributions checks no contribution is lost when many bets
// race on one jackpot under the conflict retry policy
func testConcurrentContributions(t *testing.T, store repository.Store, n int) {
	ctx := context.Background()
	require.NoError(t, store.UpsertJackpotConfig(ctx, FixedJackpot("jp-race", "1")))

	svc := contribution.NewService(store)
	policy := retry.Policy{MaxAttempts: 500, InitialInterval: time.Millisecond, MaxInterval: 20 * time.Millisecond}

	var wg sync.WaitGroup
	var mu sync.Mutex
	sum := decimal.Zero
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stake := decimal.NewFromInt(int64(10 + i))
			c, err := retry.Do(ctx, policy, func(ctx context.Context) (*domain.Contribution, error) {
				return svc.ProcessContribution(ctx, fmt.Sprintf("race-bet-%d", i), 1, "jp-race", stake)
			})
			if err != nil {
				errs <- err
				return
			}
			mu.Lock()
			sum = sum.Add(c.ContributionAmount)
			mu.Unlock()
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	jp, err := store.ReadJackpot(ctx, "jp-race")
	require.NoError(t, err)
	want := dec("1000").Add(sum)
	assert.True(t, jp.CurrentPoolValue.Equal(want), "pool %s want %s", jp.CurrentPoolValue, want)
	assert.Equal(t, int64(n), jp.Version)

	list, err := store.ListContributionsByJackpot(ctx, "jp-race", n+10)
	require.NoError(t, err)
	assert.Len(t, list, n)
}

// testConcurrentRewards checks many winning evaluations on distinct bets
// commit exactly one reward
func testConcurrentRewards(t *testing.T, store repository.Store, n int) {
	ctx := context.Background()
	require.NoError(t, store.UpsertJackpotConfig(ctx, FixedJackpot("jp-win", "100")))

	user, err := store.CreateUser(ctx, "racer")
	require.NoError(t, err)

	contributions := contribution.NewService(store)
	for i := 0; i < n; i++ {
		_, err := retry.Do(ctx, retry.DefaultPolicy(), func(ctx context.Context) (*domain.Contribution, error) {
			return contributions.ProcessContribution(ctx, fmt.Sprintf("win-bet-%d", i), user.ID, "jp-win", dec("100"))
		})
		require.NoError(t, err)
	}

	before, err := store.ReadJackpot(ctx, "jp-win")
	require.NoError(t, err)

	rewards := reward.NewService(store, outcome.NewFixedSource(0))
	policy := retry.Policy{MaxAttempts: 50, InitialInterval: time.Millisecond, MaxInterval: 10 * time.Millisecond}

	var wg sync.WaitGroup
	results := make(chan *domain.Reward, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := retry.Do(ctx, policy, func(ctx context.Context) (*domain.Reward, error) {
				return rewards.EvaluateReward(ctx, fmt.Sprintf("win-bet-%d", i), user.ID, "jp-win")
			})
			if err != nil {
				errs <- err
				return
			}
			if r != nil {
				results <- r
			}
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var winners []*domain.Reward
	for r := range results {
		winners = append(winners, r)
	}
	require.Len(t, winners, 1)
	assert.True(t, winners[0].JackpotRewardAmount.Equal(before.CurrentPoolValue))

	after, err := store.ReadJackpot(ctx, "jp-win")
	require.NoError(t, err)
	assert.True(t, after.CurrentPoolValue.Equal(dec("1000")))

	// Re-evaluating the winner is idempotent and leaves the pool alone
	again, err := rewards.EvaluateReward(ctx, winners[0].BetID, user.ID, "jp-win")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, winners[0].BetID, again.BetID)
	assert.True(t, again.JackpotRewardAmount.Equal(winners[0].JackpotRewardAmount))

	final, err := store.ReadJackpot(ctx, "jp-win")
	require.NoError(t, err)
	assert.Equal(t, after.Version, final.Version)
}
