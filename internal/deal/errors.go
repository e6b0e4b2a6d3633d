package deal

import "errors"

// Domain-specific errors for the deal package.
var (
	ErrEmptyQuery = errors.New("search query is empty")
)
