package usecase

import (
	"context"
	"fmt"
	"strings"

	"deal-finder/internal/model"
)

// compareProducts answers comparison and recommendation turns from the
// current product set. The core facts (cheapest, best rated) are computed
// deterministically so the answer stays correct even when the LLM is down.
func (uc *implUseCase) compareProducts(ctx context.Context, query string, products []model.Product) string {
	if len(products) == 0 {
		return MessageNothingToShow
	}

	cheapest := products[0]
	for _, p := range products[1:] {
		if p.Price < cheapest.Price {
			cheapest = p
		}
	}

	var best *model.Product
	for i := range products {
		p := &products[i]
		if p.Rating == nil {
			continue
		}
		if best == nil || *p.Rating > *best.Rating {
			best = p
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The cheapest option is %s at $%.2f from %s.", cheapest.Title, cheapest.Price, cheapest.Retailer)
	if best != nil && best.ProductID != cheapest.ProductID {
		fmt.Fprintf(&b, " The highest rated is %s at %.1f stars for $%.2f.", best.Title, *best.Rating, best.Price)
	} else if best != nil {
		fmt.Fprintf(&b, " It is also the highest rated at %.1f stars.", *best.Rating)
	}
	base := b.String()

	prompt := fmt.Sprintf(PromptAnswer, query, productLines(products))
	text, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return base
	}
	return strings.TrimSpace(text)
}

// answerQuestion handles question turns, optionally scoped to one product the
// classifier resolved from an ordinal reference.
func (uc *implUseCase) answerQuestion(ctx context.Context, query, reference string, state *model.ConversationState) string {
	if len(state.CurrentProducts) == 0 {
		return MessageNothingToShow
	}

	scope := state.CurrentProducts
	if reference != "" {
		if id, ok := state.ProductReferences[strings.ToLower(reference)]; ok {
			for _, p := range state.CurrentProducts {
				if p.ProductID == id {
					scope = []model.Product{p}
					break
				}
			}
		}
	}

	prompt := fmt.Sprintf(PromptAnswer, query, productLines(scope))
	text, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		p := scope[0]
		return fmt.Sprintf("%s costs $%.2f at %s. %s", p.Title, p.Price, p.Retailer, p.URL)
	}
	return strings.TrimSpace(text)
}
