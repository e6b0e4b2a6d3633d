package search

import "context"

// RawProduct is an untyped provider record. Schemas vary per provider and
// are only interpreted by the normalization step.
type RawProduct = map[string]any

// Query is the provider-agnostic search input.
type Query struct {
	Text       string
	MinPrice   *float64
	MaxPrice   *float64
	Condition  string
	MaxResults int
}

// Provider is one external product-search backend.
type Provider interface {
	// Search returns raw product records for the query
	Search(ctx context.Context, q Query) ([]RawProduct, error)

	// Name returns the provider name used for rate limiting and logging
	Name() string
}
