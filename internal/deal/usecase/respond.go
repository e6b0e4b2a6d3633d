package usecase

import (
	"context"
	"fmt"
	"strings"

	"deal-finder/internal/model"
)

// synthesize builds the user-facing summary for a search turn. The LLM writes
// the message; any failure falls back to a deterministic template so the turn
// always produces something readable.
func (uc *implUseCase) synthesize(ctx context.Context, query string, products []model.Product) string {
	if len(products) == 0 {
		return MessageNoResults
	}

	minP, maxP := priceBounds(products)
	prompt := fmt.Sprintf(PromptSummarize, query, len(products), minP, maxP, topTitles(products, 3))

	text, err := uc.llm.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			uc.l.Warnf(ctx, "%s: summary generation failed, using template: %v", LogPrefixFindDeals, err)
		}
		return fmt.Sprintf("Found %d results for %q.", len(products), query)
	}

	return strings.TrimSpace(text)
}

func priceBounds(products []model.Product) (min, max float64) {
	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

func topTitles(products []model.Product, n int) string {
	if len(products) < n {
		n = len(products)
	}
	titles := make([]string, 0, n)
	for _, p := range products[:n] {
		titles = append(titles, p.Title)
	}
	return strings.Join(titles, "; ")
}

// productLines renders products as a compact numbered list for LLM prompts.
func productLines(products []model.Product) string {
	var b strings.Builder
	for i, p := range products {
		fmt.Fprintf(&b, "%d. %s - $%.2f (%s)", i+1, p.Title, p.Price, p.Retailer)
		if p.Rating != nil {
			fmt.Fprintf(&b, " rated %.1f", *p.Rating)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
