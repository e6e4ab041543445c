// Package retry re-runs operations that lost an optimistic concurrency race.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// Policy bounds conflict retries
type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration

	// OnConflict is called after every attempt that ended in a conflict
	OnConflict func(attempt int)
}

// DefaultPolicy returns the policy used when nothing is configured
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     DefaultMaxAttempts,
		InitialInterval: DefaultInitialInterval,
		MaxInterval:     DefaultMaxInterval,
	}
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.InitialInterval
	eb.MaxInterval = p.MaxInterval
	eb.RandomizationFactor = JitterFactor
	eb.MaxElapsedTime = 0

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(attempts-1)), ctx)
}

// Do runs op until it succeeds, fails with anything other than
// domain.ErrConcurrencyConflict, or the attempt budget is spent. Every attempt
// re-runs op from scratch. Exhaustion returns the last conflict wrapped with
// domain.ErrRetriesExhausted.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0

	result, err := backoff.RetryWithData(func() (T, error) {
		attempt++
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			return v, backoff.Permanent(err)
		}
		if p.OnConflict != nil {
			p.OnConflict(attempt)
		}
		return v, err
	}, p.backOff(ctx))

	if errors.Is(err, domain.ErrConcurrencyConflict) {
		return result, fmt.Errorf("%w after %d attempts: %w", domain.ErrRetriesExhausted, attempt, err)
	}
	return result, err
}
