package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JackpotEngine_Go/internal/database/memory"
	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
	"github.com/osse101/JackpotEngine_Go/internal/testing/storetest"
)

// countingStore counts reward lookups that reach the backend
type countingStore struct {
	repository.Store
	finds  int
	exists int
}

func (s *countingStore) FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error) {
	s.finds++
	return s.Store.FindRewardForBet(ctx, betID)
}

func (s *countingStore) ExistsRewardForBet(ctx context.Context, betID string) (bool, error) {
	s.exists++
	return s.Store.ExistsRewardForBet(ctx, betID)
}

func seedWin(t *testing.T, store repository.Store) *domain.Reward {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.UpsertJackpotConfig(ctx, storetest.FixedJackpot("jp-1", "100")))
	return &domain.Reward{
		BetID:               "bet-1",
		UserID:              1,
		JackpotID:           "jp-1",
		JackpotRewardAmount: decimal.RequireFromString("1000"),
		CreatedAt:           time.Now(),
	}
}

func TestRewardCache_CommitPopulates(t *testing.T) {
	backend := &countingStore{Store: memory.NewStore()}
	c := NewRewardCache(backend, 10, time.Minute)
	ctx := context.Background()

	r := seedWin(t, c)
	_, err := c.CommitReward(ctx, r, decimal.RequireFromString("1000"), 0)
	require.NoError(t, err)

	got, err := c.FindRewardForBet(ctx, "bet-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "jp-1", got.JackpotID)

	ok, err := c.ExistsRewardForBet(ctx, "bet-1")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Zero(t, backend.finds)
	assert.Zero(t, backend.exists)
	assert.Equal(t, uint64(2), c.Stats().Hits)
}

func TestRewardCache_NegativeLookupsAreNotCached(t *testing.T) {
	backend := &countingStore{Store: memory.NewStore()}
	c := NewRewardCache(backend, 10, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := c.FindRewardForBet(ctx, "bet-none")
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	assert.Equal(t, 3, backend.finds)
	assert.Zero(t, c.Stats().Size)
}

func TestRewardCache_ReadThrough(t *testing.T) {
	inner := memory.NewStore()
	r := seedWin(t, inner)
	_, err := inner.CommitReward(context.Background(), r, decimal.RequireFromString("1000"), 0)
	require.NoError(t, err)

	backend := &countingStore{Store: inner}
	c := NewRewardCache(backend, 10, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := c.FindRewardForBet(context.Background(), "bet-1")
		require.NoError(t, err)
		require.NotNil(t, got)
	}
	assert.Equal(t, 1, backend.finds)
}

func TestRewardCache_ReturnsCopies(t *testing.T) {
	c := NewRewardCache(memory.NewStore(), 10, time.Minute)
	ctx := context.Background()
	r := seedWin(t, c)
	_, err := c.CommitReward(ctx, r, decimal.RequireFromString("1000"), 0)
	require.NoError(t, err)

	first, err := c.FindRewardForBet(ctx, "bet-1")
	require.NoError(t, err)
	first.JackpotID = "mutated"

	second, err := c.FindRewardForBet(ctx, "bet-1")
	require.NoError(t, err)
	assert.Equal(t, "jp-1", second.JackpotID)
}

func TestRewardCache_SchemaVersionMismatchEvicts(t *testing.T) {
	c := NewRewardCache(memory.NewStore(), 10, time.Minute)
	c.lru.Add("bet-old", &cachedRewardEntry{Version: "0.9", Reward: domain.Reward{BetID: "bet-old"}})

	got, ok := c.get("bet-old")
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Zero(t, c.Stats().Size)
}

func TestRewardCache_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.Store {
		return NewRewardCache(memory.NewStore(), 100, time.Minute)
	}, storetest.Options{Concurrency: 20})
}
