package search

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// providerLimiter enforces a minimum inter-request interval per provider.
// Limiters live in an expirable LRU so idle providers clean themselves up.
type providerLimiter struct {
	limiters    *expirable.LRU[string, *rate.Limiter]
	minInterval time.Duration
}

func newProviderLimiter(minInterval time.Duration) *providerLimiter {
	if minInterval <= 0 {
		minInterval = time.Second
	}
	return &providerLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			100,
			nil,
			time.Minute*10,
		),
		minInterval: minInterval,
	}
}

// Wait blocks until a call to the named provider is allowed, or the context
// expires.
func (pl *providerLimiter) Wait(ctx context.Context, provider string) error {
	limiter, ok := pl.limiters.Get(provider)
	if !ok {
		limiter = rate.NewLimiter(rate.Every(pl.minInterval), 1)
		pl.limiters.Add(provider, limiter)
	}
	return limiter.Wait(ctx)
}
