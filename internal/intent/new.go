package intent

import (
	"context"

	"deal-finder/internal/model"
	"deal-finder/pkg/llmprovider"
	"deal-finder/pkg/log"
)

// Classifier determines the intent of a user turn
type Classifier interface {
	Classify(ctx context.Context, query string, state *model.ConversationState) Result
}

// RuleLLMClassifier resolves unambiguous turns with deterministic rules and
// falls back to the LLM for the rest.
type RuleLLMClassifier struct {
	llm llmprovider.TextGenerator
	l   log.Logger
}

var _ Classifier = (*RuleLLMClassifier)(nil)

// New creates a new RuleLLMClassifier
func New(llm llmprovider.TextGenerator, l log.Logger) *RuleLLMClassifier {
	return &RuleLLMClassifier{
		llm: llm,
		l:   l,
	}
}
