package search

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"deal-finder/internal/model"
)

// resultCache is a TTL cache of validated search results. Writes are
// idempotent (same key derives from the same inputs), so concurrent turns
// racing on a key only cost a redundant provider call.
type resultCache struct {
	entries *expirable.LRU[string, []model.Product]
}

func newResultCache(size int, ttl time.Duration) *resultCache {
	if size <= 0 {
		size = 1000
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &resultCache{
		entries: expirable.NewLRU[string, []model.Product](size, nil, ttl),
	}
}

func (c *resultCache) Get(key string) ([]model.Product, bool) {
	return c.entries.Get(key)
}

func (c *resultCache) Add(key string, products []model.Product) {
	c.entries.Add(key, products)
}

// cacheKey derives a deterministic key from every input that affects the
// provider response.
func cacheKey(q Query) string {
	min := "-"
	if q.MinPrice != nil {
		min = fmt.Sprintf("%.2f", *q.MinPrice)
	}
	max := "-"
	if q.MaxPrice != nil {
		max = fmt.Sprintf("%.2f", *q.MaxPrice)
	}

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s|%d",
		q.Text, min, max, q.Condition, q.MaxResults)))
	return hex.EncodeToString(sum[:16])
}
