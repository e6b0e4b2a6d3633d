package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"deal-finder/internal/model"
	"deal-finder/pkg/llmprovider"
)

// Extract parses one user query into structured search requests plus shared
// context. The fallback order is explicit: fast path, then LLM, then a single
// generic request built from the raw query. It never returns zero requests.
// prevTitles carries the prior turn's product titles for follow-up queries;
// pass nil when the query stands alone.
func (e *HeuristicLLMExtractor) Extract(ctx context.Context, query string, prevTitles []string) Result {
	tokens := tokenize(query)
	sharedCtx := extractSharedContext(query)
	sharedCtx.PreviousProducts = prevTitles

	if len(tokens) < FastPathTokenLimit {
		if reqs := parseFast(query); len(reqs) > 0 {
			e.l.Debugf(ctx, "%s: fast path matched %d product(s)", LogPrefixExtract, len(reqs))
			return Result{Products: Enrich(reqs), SharedContext: sharedCtx}
		}
	}

	if reqs, err := e.extractWithLLM(ctx, query, prevTitles, &sharedCtx); err == nil {
		return Result{Products: Enrich(reqs), SharedContext: sharedCtx}
	} else {
		e.l.Warnf(ctx, "%s: LLM extraction failed, using generic request: %v", LogPrefixExtract, err)
	}

	fallback := genericRequest(query)
	if len(prevTitles) > 0 {
		fallback = withPreviousProducts(fallback, prevTitles)
	}

	return Result{
		Products:      Enrich([]model.SearchRequest{fallback}),
		SharedContext: sharedCtx,
	}
}

// Wire types for the LLM extraction response.
type llmExtraction struct {
	Products      []llmProduct     `json:"products"`
	SharedContext llmSharedContext `json:"shared_context"`
}

type llmProduct struct {
	ProductType      string        `json:"product_type"`
	KeyAttributes    []string      `json:"key_attributes"`
	Color            string        `json:"color"`
	Brand            string        `json:"brand"`
	PriceRange       llmPriceRange `json:"price_range"`
	SearchKeywords   []string      `json:"search_keywords"`
	MustHaveFeatures []string      `json:"must_have_features"`
}

type llmPriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type llmSharedContext struct {
	Occasion      string   `json:"occasion"`
	Urgency       string   `json:"urgency"`
	Location      string   `json:"location"`
	OverallBudget *float64 `json:"overall_budget"`
}

func (e *HeuristicLLMExtractor) extractWithLLM(ctx context.Context, query string, prevTitles []string, sharedCtx *model.SharedContext) ([]model.SearchRequest, error) {
	previous := "none"
	if len(prevTitles) > 0 {
		previous = strings.Join(prevTitles, "; ")
	}
	prompt := fmt.Sprintf(PromptExtractSystem, query, previous)

	text, err := e.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("llm call: %w", err)
	}

	raw := llmprovider.FirstJSONObject(text)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var parsed llmExtraction
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(parsed.Products) == 0 {
		return nil, fmt.Errorf("response contained no products")
	}

	queryRange := ExtractPriceRange(query)
	reqs := make([]model.SearchRequest, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if p.ProductType == "" && len(p.SearchKeywords) == 0 {
			continue
		}
		req := model.SearchRequest{
			ProductType:      p.ProductType,
			KeyAttributes:    p.KeyAttributes,
			Color:            p.Color,
			Brand:            p.Brand,
			PriceRange:       model.PriceRange{Min: p.PriceRange.Min, Max: p.PriceRange.Max},
			SearchKeywords:   p.SearchKeywords,
			MustHaveFeatures: p.MustHaveFeatures,
		}
		// The model sometimes drops a bound the regexes catch.
		if req.PriceRange.Min == nil && req.PriceRange.Max == nil {
			req.PriceRange = queryRange
		}
		if len(req.SearchKeywords) == 0 {
			req.SearchKeywords = []string{p.ProductType}
		}
		reqs = append(reqs, req)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("response contained no usable products")
	}

	// Heuristic context fills any fields the model left empty.
	if parsed.SharedContext.Occasion != "" {
		sharedCtx.Occasion = parsed.SharedContext.Occasion
	}
	if parsed.SharedContext.Urgency != "" {
		sharedCtx.Urgency = parsed.SharedContext.Urgency
	}
	if parsed.SharedContext.Location != "" {
		sharedCtx.Location = parsed.SharedContext.Location
	}
	if parsed.SharedContext.OverallBudget != nil {
		sharedCtx.OverallBudget = parsed.SharedContext.OverallBudget
	}

	return reqs, nil
}
