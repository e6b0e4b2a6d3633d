package deal

import (
	"context"

	"deal-finder/internal/model"
)

// UseCase defines the business logic interface for the deal domain.
type UseCase interface {
	// FindDeals processes one conversational query end to end: classify,
	// extract, search, validate, update state, and synthesize a response.
	FindDeals(ctx context.Context, sc model.Scope, input FindDealsInput) (FindDealsOutput, error)
}
