package search

import (
	"context"
	"strings"
	"sync"

	"deal-finder/internal/model"
)

// Execute runs every search request concurrently and merges the results
// preserving the order of the originating request list. A failed request
// contributes an empty slice and never affects its siblings.
func (o *Orchestrator) Execute(ctx context.Context, reqs []model.SearchRequest) []model.Product {
	if len(reqs) == 0 {
		return nil
	}

	slots := make([][]model.Product, len(reqs))
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req model.SearchRequest) {
			defer wg.Done()
			slots[i] = o.Search(ctx, requestQueryText(req),
				req.PriceRange.Min, req.PriceRange.Max, req.Condition, o.cfg.MaxResults)
		}(i, req)
	}
	wg.Wait()

	var merged []model.Product
	for _, products := range slots {
		merged = append(merged, products...)
	}

	o.l.Infof(ctx, "%s: %d request(s) -> %d product(s)", LogPrefixExecute, len(reqs), len(merged))
	return merged
}

// Search runs one query against all providers, cache first. Provider errors
// degrade to empty results; this method never fails. An all-providers-failed
// outcome is not cached, so identical queries retry once the outage clears.
func (o *Orchestrator) Search(ctx context.Context, query string, minPrice, maxPrice *float64, condition string, maxResults int) []model.Product {
	if maxResults <= 0 || maxResults > o.cfg.MaxResults {
		maxResults = o.cfg.MaxResults
	}

	q := Query{
		Text:       query,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Condition:  condition,
		MaxResults: maxResults,
	}

	key := cacheKey(q)
	if cached, ok := o.cache.Get(key); ok {
		o.l.Debugf(ctx, "%s: cache hit for %q", LogPrefixSearch, query)
		return cached
	}

	slots := make([][]model.Product, len(o.providers))
	errs := make([]error, len(o.providers))
	var wg sync.WaitGroup
	for i, p := range o.providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()
			slots[i], errs[i] = o.callProvider(ctx, p, q)
		}(i, p)
	}
	wg.Wait()

	var products []model.Product
	for _, s := range slots {
		products = append(products, s...)
	}
	if len(products) > maxResults {
		products = products[:maxResults]
	}

	if allFailed(errs) {
		o.l.Warnf(ctx, "%s: all providers failed for %q, result not cached", LogPrefixSearch, query)
		return products
	}

	o.cache.Add(key, products)
	return products
}

func allFailed(errs []error) bool {
	if len(errs) == 0 {
		return false
	}
	for _, err := range errs {
		if err == nil {
			return false
		}
	}
	return true
}

// callProvider rate-limits, times out, and normalizes one provider call. The
// error reports whether the provider was actually consulted; an empty result
// from a healthy provider returns nil.
func (o *Orchestrator) callProvider(ctx context.Context, p Provider, q Query) ([]model.Product, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.cfg.CallTimeout)
	defer cancel()

	if err := o.limiter.Wait(callCtx, p.Name()); err != nil {
		o.l.Warnf(ctx, "%s: rate limit wait aborted for %s: %v", LogPrefixSearch, p.Name(), err)
		return nil, err
	}

	records, err := p.Search(callCtx, q)
	if err != nil {
		o.l.Warnf(ctx, "%s: provider %s failed: %v", LogPrefixSearch, p.Name(), err)
		return nil, err
	}

	products := make([]model.Product, 0, len(records))
	for _, raw := range records {
		product, ok := normalizeRecord(raw, p.Name())
		if !ok {
			o.l.Debugf(ctx, "%s: skipping %s record without price", LogPrefixSearch, p.Name())
			continue
		}
		products = append(products, product)
		if len(products) >= q.MaxResults {
			break
		}
	}
	return products, nil
}

func requestQueryText(req model.SearchRequest) string {
	if len(req.SearchKeywords) > 0 {
		return strings.Join(req.SearchKeywords, " ")
	}
	return req.ProductType
}
