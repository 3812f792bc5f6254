package corpus

import (
	"context"
	"fmt"

	"resumescore/internal/config"
	"resumescore/internal/errors"
	"resumescore/internal/types"

	"github.com/sony/gobreaker/v2"
)

// BreakerStore wraps a Store with circuit breaker protection. It exists for
// stores backed by an external reference-data service; a tripped breaker
// fails lookups fast so the fallback chain (and ultimately the request)
// resolves without waiting on a degraded backend.
type BreakerStore struct {
	inner Store
	cb    *gobreaker.CircuitBreaker[*types.KeywordSet]
}

// NewBreakerStore creates a breaker-guarded store. Returns the inner store
// unchanged when the breaker is disabled.
func NewBreakerStore(inner Store, cfg config.CircuitBreakerConfig, logger *errors.Logger) Store {
	if !cfg.Enabled {
		return inner
	}

	settings := gobreaker.Settings{
		Name:        "corpus-lookup",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
					"max_requests", cfg.MaxRequests,
					"failure_threshold", cfg.FailureThreshold)
			}
		},
		IsSuccessful: func(err error) bool {
			// A missing key is a valid answer, not a backend failure.
			return err == nil || err == ErrNotFound
		},
	}

	return &BreakerStore{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[*types.KeywordSet](settings),
	}
}

// Lookup implements Store with breaker protection.
func (bs *BreakerStore) Lookup(ctx context.Context, industry, level string) (*types.KeywordSet, error) {
	set, err := bs.cb.Execute(func() (*types.KeywordSet, error) {
		return bs.inner.Lookup(ctx, industry, level)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, fmt.Errorf("corpus lookup unavailable: %w", err)
	}
	return set, err
}

// Stats returns breaker statistics for the stats endpoint.
func (bs *BreakerStore) Stats() map[string]any {
	return map[string]any{
		"name":    bs.cb.Name(),
		"state":   bs.cb.State().String(),
		"counts":  bs.cb.Counts(),
		"enabled": true,
	}
}

// IsHealthy reports whether the breaker is closed.
func (bs *BreakerStore) IsHealthy() bool {
	return bs.cb.State() == gobreaker.StateClosed
}
