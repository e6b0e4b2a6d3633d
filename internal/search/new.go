package search

import (
	"time"

	"deal-finder/pkg/log"
)

// Log prefixes
const (
	LogPrefixSearch  = "internal.search.Search"
	LogPrefixExecute = "internal.search.Execute"
)

// MaxResultsCap bounds provider call cost regardless of caller request size.
const MaxResultsCap = 10

// Config tunes the orchestrator.
type Config struct {
	CacheSize   int
	CacheTTL    time.Duration // default 1h
	MinInterval time.Duration // per-provider minimum inter-request interval
	CallTimeout time.Duration // per provider call
	MaxResults  int           // server-side cap, never above MaxResultsCap
}

// Orchestrator runs searches against all configured providers with caching
// and per-provider rate limiting.
type Orchestrator struct {
	providers []Provider
	cache     *resultCache
	limiter   *providerLimiter
	cfg       Config
	l         log.Logger
}

// New creates a new Orchestrator
func New(providers []Provider, cfg Config, l log.Logger) *Orchestrator {
	if cfg.MaxResults <= 0 || cfg.MaxResults > MaxResultsCap {
		cfg.MaxResults = MaxResultsCap
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 15 * time.Second
	}
	return &Orchestrator{
		providers: providers,
		cache:     newResultCache(cfg.CacheSize, cfg.CacheTTL),
		limiter:   newProviderLimiter(cfg.MinInterval),
		cfg:       cfg,
		l:         l,
	}
}
