package search

import (
	"context"

	"deal-finder/pkg/rapidapi"
	"deal-finder/pkg/searchapi"
)

// SearchAPIProvider adapts pkg/searchapi to the Provider interface.
type SearchAPIProvider struct {
	client searchapi.ISearchAPI
}

// NewSearchAPIProvider creates a new SearchAPI.io provider
func NewSearchAPIProvider(client searchapi.ISearchAPI) *SearchAPIProvider {
	return &SearchAPIProvider{client: client}
}

// Search implements Provider
func (p *SearchAPIProvider) Search(ctx context.Context, q Query) ([]RawProduct, error) {
	records, err := p.client.SearchShopping(ctx, searchapi.Query{
		Text:       q.Text,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		Condition:  q.Condition,
		MaxResults: q.MaxResults,
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Name implements Provider
func (p *SearchAPIProvider) Name() string {
	return "searchapi"
}

// WalmartProvider adapts pkg/rapidapi to the Provider interface.
type WalmartProvider struct {
	client rapidapi.IWalmart
}

// NewWalmartProvider creates a new Walmart provider
func NewWalmartProvider(client rapidapi.IWalmart) *WalmartProvider {
	return &WalmartProvider{client: client}
}

// Search implements Provider
func (p *WalmartProvider) Search(ctx context.Context, q Query) ([]RawProduct, error) {
	records, err := p.client.SearchProducts(ctx, rapidapi.Query{
		Text:       q.Text,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		MaxResults: q.MaxResults,
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Name implements Provider
func (p *WalmartProvider) Name() string {
	return "walmart"
}
