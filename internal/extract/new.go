package extract

import (
	"context"

	"deal-finder/internal/model"
	"deal-finder/pkg/llmprovider"
	"deal-finder/pkg/log"
)

// Result is the extractor output for one user query.
type Result struct {
	Products      []model.SearchRequest
	SharedContext model.SharedContext
}

// Extractor turns free text into structured search requests. prevTitles
// carries the prior turn's product titles into follow-up extraction.
type Extractor interface {
	Extract(ctx context.Context, query string, prevTitles []string) Result
}

// HeuristicLLMExtractor runs the fast lexicon/regex parser first and falls
// back to the LLM for long or unrecognized queries.
type HeuristicLLMExtractor struct {
	llm llmprovider.TextGenerator
	l   log.Logger
}

var _ Extractor = (*HeuristicLLMExtractor)(nil)

// New creates a new HeuristicLLMExtractor
func New(llm llmprovider.TextGenerator, l log.Logger) *HeuristicLLMExtractor {
	return &HeuristicLLMExtractor{
		llm: llm,
		l:   l,
	}
}
