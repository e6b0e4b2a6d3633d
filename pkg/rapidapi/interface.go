package rapidapi

import "context"

// IWalmart defines the interface for the RapidAPI Walmart client.
// Implementations are safe for concurrent use.
type IWalmart interface {
	// SearchProducts runs a product search and returns the raw result records
	SearchProducts(ctx context.Context, q Query) ([]map[string]any, error)
}

// New creates a new Walmart client with the given configuration
func New(cfg Config) (IWalmart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newWalmartImpl(cfg), nil
}
