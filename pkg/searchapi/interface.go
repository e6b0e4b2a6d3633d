package searchapi

import "context"

// ISearchAPI defines the interface for SearchAPI.io client.
// Implementations are safe for concurrent use.
type ISearchAPI interface {
	// SearchShopping runs a shopping search and returns the raw result records
	SearchShopping(ctx context.Context, q Query) ([]map[string]any, error)
}

// New creates a new SearchAPI.io client with the given configuration
func New(cfg Config) (ISearchAPI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSearchAPIImpl(cfg), nil
}
