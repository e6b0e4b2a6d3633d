package model

// PriceRange bounds a product search. Nil means unbounded on that side.
type PriceRange struct {
	Min *float64
	Max *float64
}

// SearchRequest is one structured product search extracted from a user query.
// A single query can yield several requests ("a laptop and a mouse").
type SearchRequest struct {
	ProductType      string
	KeyAttributes    []string
	Color            string
	Brand            string
	PriceRange       PriceRange
	Condition        string // new/used/refurbished, empty when unconstrained
	SearchKeywords   []string
	MustHaveFeatures []string
	Sentiment        float64 // polarity in [-1,1], bias only
}

// SharedContext carries cross-product context extracted from a query.
type SharedContext struct {
	Occasion         string
	Urgency          string
	Location         string
	OverallBudget    *float64
	PreviousProducts []string
}
