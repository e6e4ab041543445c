package cache

import "time"

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultRewardCacheSize is the default maximum number of cached rewards
const DefaultRewardCacheSize = 1024

// DefaultRewardCacheTTL is the default time-to-live for cached rewards
const DefaultRewardCacheTTL = 10 * time.Minute
