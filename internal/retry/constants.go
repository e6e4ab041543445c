package retry

import "time"

// Defaults applied when no retry configuration is given
const (
	DefaultMaxAttempts     = 10
	DefaultInitialInterval = 5 * time.Millisecond
	DefaultMaxInterval     = 200 * time.Millisecond
)

// JitterFactor randomizes each backoff interval by +/- this fraction
const JitterFactor = 0.5
