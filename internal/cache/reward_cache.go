// Package cache holds read-through caches in front of a storage backend.
package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
	"github.com/osse101/JackpotEngine_Go/internal/repository"
)

// cachedRewardEntry wraps a reward with version metadata for cache invalidation
type cachedRewardEntry struct {
	Version  string
	Reward   domain.Reward
	CachedAt time.Time
}

// Stats reports cache effectiveness
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

// RewardCache decorates a store with an expirable LRU of rewards keyed by bet ID.
// Rewards are write-once, so only positive lookups are cached and no invalidation
// is needed. Every other call, jackpot reads included, goes straight to the store.
type RewardCache struct {
	repository.Store
	lru    *expirable.LRU[string, *cachedRewardEntry]
	hits   atomic.Uint64
	misses atomic.Uint64
}

var _ repository.Store = (*RewardCache)(nil)

// NewRewardCache wraps store with a cache of at most size rewards living ttl each
func NewRewardCache(store repository.Store, size int, ttl time.Duration) *RewardCache {
	if size <= 0 {
		size = DefaultRewardCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultRewardCacheTTL
	}
	return &RewardCache{
		Store: store,
		lru:   expirable.NewLRU[string, *cachedRewardEntry](size, nil, ttl),
	}
}

func (c *RewardCache) get(betID string) (*domain.Reward, bool) {
	entry, found := c.lru.Get(betID)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(betID)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	r := entry.Reward
	return &r, true
}

func (c *RewardCache) set(r *domain.Reward) {
	c.lru.Add(r.BetID, &cachedRewardEntry{
		Version:  CacheSchemaVersion,
		Reward:   *r,
		CachedAt: time.Now(),
	})
}

// FindRewardForBet serves cached rewards and caches any reward found in the store
func (c *RewardCache) FindRewardForBet(ctx context.Context, betID string) (*domain.Reward, error) {
	if r, ok := c.get(betID); ok {
		return r, nil
	}
	r, err := c.Store.FindRewardForBet(ctx, betID)
	if err != nil || r == nil {
		return r, err
	}
	c.set(r)
	return r, nil
}

// ExistsRewardForBet answers true from the cache; a miss asks the store
func (c *RewardCache) ExistsRewardForBet(ctx context.Context, betID string) (bool, error) {
	if _, ok := c.get(betID); ok {
		return true, nil
	}
	return c.Store.ExistsRewardForBet(ctx, betID)
}

// CommitReward commits through the store and caches the persisted reward
func (c *RewardCache) CommitReward(ctx context.Context, r *domain.Reward, resetPool decimal.Decimal, expectedVersion int64) (*domain.Reward, error) {
	committed, err := c.Store.CommitReward(ctx, r, resetPool, expectedVersion)
	if err != nil {
		return nil, err
	}
	c.set(committed)
	return committed, nil
}

// Stats returns hit and miss counters since creation
func (c *RewardCache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load(), Size: c.lru.Len()}
}

// Purge empties the cache
func (c *RewardCache) Purge() {
	c.lru.Purge()
}
