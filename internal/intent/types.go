package intent

// Intent represents the classified purpose of a user turn
type Intent string

const (
	IntentNewSearch      Intent = "new_search"
	IntentRefine         Intent = "refine"
	IntentComparison     Intent = "comparison"
	IntentRecommendation Intent = "recommendation"
	IntentQuestion       Intent = "question"
	IntentClarification  Intent = "clarification"
	IntentConfirmation   Intent = "confirmation"
)

// RequiresSearch reports whether the intent triggers a provider search.
func (i Intent) RequiresSearch() bool {
	return i == IntentNewSearch || i == IntentRefine
}

// Valid reports whether the value is one of the known intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentNewSearch, IntentRefine, IntentComparison, IntentRecommendation,
		IntentQuestion, IntentClarification, IntentConfirmation:
		return true
	}
	return false
}

// Result is the structured classification output
type Result struct {
	Intent                   Intent `json:"intent"`
	ReferencesPrevious       bool   `json:"references_previous"`
	SpecificProductReference string `json:"specific_product_reference,omitempty"`
	Persona                  string `json:"persona,omitempty"`
	RequiresSearch           bool   `json:"requires_search"`
	Explanation              string `json:"explanation,omitempty"`
}

// fallbackResult is returned whenever classification cannot complete.
func fallbackResult(reason string) Result {
	return Result{
		Intent:         IntentNewSearch,
		RequiresSearch: true,
		Explanation:    reason,
	}
}
