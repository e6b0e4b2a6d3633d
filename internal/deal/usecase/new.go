package usecase

import (
	"context"

	"deal-finder/internal/conversation"
	"deal-finder/internal/extract"
	"deal-finder/internal/intent"
	"deal-finder/internal/model"
	"deal-finder/pkg/llmprovider"
	pkgLog "deal-finder/pkg/log"
)

// searchOrchestrator is the slice of the search package the usecase needs.
type searchOrchestrator interface {
	Execute(ctx context.Context, reqs []model.SearchRequest) []model.Product
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        llmprovider.TextGenerator
	classifier intent.Classifier
	extractor  extract.Extractor
	search     searchOrchestrator
	conv       *conversation.Manager
}

// New creates a new deal UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmprovider.TextGenerator,
	classifier intent.Classifier,
	extractor extract.Extractor,
	search searchOrchestrator,
	conv *conversation.Manager,
) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		classifier: classifier,
		extractor:  extractor,
		search:     search,
		conv:       conv,
	}
}
