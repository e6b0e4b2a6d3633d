package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"deal-finder/pkg/log"
)

type mockLLM struct {
	generateFunc func(ctx context.Context, prompt string) (string, error)
	callCount    int
}

func (m *mockLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt)
	}
	return "", errors.New("not configured")
}

func TestExtract_FastPathSingleProduct(t *testing.T) {
	llm := &mockLLM{}
	e := New(llm, log.NewNopLogger())

	res := e.Extract(context.Background(), "coffee maker under $50", nil)

	if len(res.Products) != 1 {
		t.Fatalf("got %d products, want 1", len(res.Products))
	}
	p := res.Products[0]
	if p.ProductType != "coffee maker" {
		t.Errorf("ProductType = %q, want %q", p.ProductType, "coffee maker")
	}
	if p.PriceRange.Min != nil {
		t.Errorf("Min = %v, want nil", *p.PriceRange.Min)
	}
	if p.PriceRange.Max == nil || *p.PriceRange.Max != 50 {
		t.Errorf("Max = %v, want 50", p.PriceRange.Max)
	}
	if llm.callCount != 0 {
		t.Errorf("LLM called %d times on fast path", llm.callCount)
	}
}

func TestExtract_FastPathAttributes(t *testing.T) {
	e := New(&mockLLM{}, log.NewNopLogger())

	res := e.Extract(context.Background(), "red wireless nike headphones under $100", nil)

	if len(res.Products) != 1 {
		t.Fatalf("got %d products, want 1", len(res.Products))
	}
	p := res.Products[0]
	if p.ProductType != "headphones" {
		t.Errorf("ProductType = %q", p.ProductType)
	}
	if p.Color != "red" {
		t.Errorf("Color = %q, want red", p.Color)
	}
	if p.Brand != "nike" {
		t.Errorf("Brand = %q, want nike", p.Brand)
	}
	if len(p.KeyAttributes) != 1 || p.KeyAttributes[0] != "wireless" {
		t.Errorf("KeyAttributes = %v", p.KeyAttributes)
	}
	for _, kw := range []string{"nike", "red", "wireless", "headphones"} {
		if !containsKeyword(p.SearchKeywords, kw) {
			t.Errorf("SearchKeywords %v missing %q", p.SearchKeywords, kw)
		}
	}
}

func TestExtract_FastPathMultipleProducts(t *testing.T) {
	e := New(&mockLLM{}, log.NewNopLogger())

	res := e.Extract(context.Background(), "a black laptop and a wireless mouse", nil)

	if len(res.Products) != 2 {
		t.Fatalf("got %d products, want 2", len(res.Products))
	}
	if res.Products[0].ProductType != "laptop" || res.Products[0].Color != "black" {
		t.Errorf("first product = %+v", res.Products[0])
	}
	if res.Products[1].ProductType != "mouse" {
		t.Errorf("second product = %+v", res.Products[1])
	}
	if !containsKeyword(res.Products[1].SearchKeywords, "wireless") {
		t.Errorf("second product keywords missing wireless: %v", res.Products[1].SearchKeywords)
	}
}

func TestExtract_MoneyTokensNeverBecomeProducts(t *testing.T) {
	e := New(&mockLLM{}, log.NewNopLogger())

	res := e.Extract(context.Background(), "blender under $75", nil)

	for _, p := range res.Products {
		if strings.Contains(p.ProductType, "75") {
			t.Errorf("money token leaked into product type: %q", p.ProductType)
		}
		for _, kw := range p.SearchKeywords {
			if kw == "$75" || kw == "75" {
				t.Errorf("money token leaked into keywords: %v", p.SearchKeywords)
			}
		}
	}
}

func TestExtract_LLMPathForUnknownShortQuery(t *testing.T) {
	llm := &mockLLM{
		generateFunc: func(ctx context.Context, prompt string) (string, error) {
			return `{
				"products": [
					{"product_type": "espresso machine", "key_attributes": ["compact"], "search_keywords": ["espresso", "machine"], "price_range": {"min": null, "max": 200}}
				],
				"shared_context": {"occasion": "gift", "overall_budget": 200}
			}`, nil
		},
	}
	e := New(llm, log.NewNopLogger())

	res := e.Extract(context.Background(), "espresso machine gift under $200", nil)

	if llm.callCount != 1 {
		t.Fatalf("LLM callCount = %d, want 1", llm.callCount)
	}
	if len(res.Products) != 1 || res.Products[0].ProductType != "espresso machine" {
		t.Fatalf("products = %+v", res.Products)
	}
	if res.Products[0].PriceRange.Max == nil || *res.Products[0].PriceRange.Max != 200 {
		t.Errorf("Max = %v, want 200", res.Products[0].PriceRange.Max)
	}
	if res.SharedContext.Occasion != "gift" {
		t.Errorf("Occasion = %q, want gift", res.SharedContext.Occasion)
	}
}

func TestExtract_LLMFailureFallsBackToGeneric(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ctx context.Context, prompt string) (string, error)
	}{
		{"call error", func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("timeout")
		}},
		{"malformed json", func(ctx context.Context, prompt string) (string, error) {
			return "not json at all", nil
		}},
		{"empty products", func(ctx context.Context, prompt string) (string, error) {
			return `{"products": [], "shared_context": {}}`, nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(&mockLLM{generateFunc: tt.fn}, log.NewNopLogger())

			res := e.Extract(context.Background(), "zorbtrax gizmo under $25", nil)

			if len(res.Products) != 1 {
				t.Fatalf("got %d products, want 1 generic", len(res.Products))
			}
			p := res.Products[0]
			if p.PriceRange.Max == nil || *p.PriceRange.Max != 25 {
				t.Errorf("Max = %v, want 25", p.PriceRange.Max)
			}
			if !containsKeyword(p.SearchKeywords, "zorbtrax") || !containsKeyword(p.SearchKeywords, "gizmo") {
				t.Errorf("generic keywords = %v", p.SearchKeywords)
			}
		})
	}
}

func TestExtract_SharedContextHeuristics(t *testing.T) {
	e := New(&mockLLM{}, log.NewNopLogger())

	res := e.Extract(context.Background(), "black dress for a wedding, need it this week", nil)

	if res.SharedContext.Occasion != "wedding" {
		t.Errorf("Occasion = %q, want wedding", res.SharedContext.Occasion)
	}
	if res.SharedContext.Urgency != "this_week" {
		t.Errorf("Urgency = %q, want this_week", res.SharedContext.Urgency)
	}
}

func TestExtract_PreviousTitlesSteerGenericFallback(t *testing.T) {
	llm := &mockLLM{
		generateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("timeout")
		},
	}
	e := New(llm, log.NewNopLogger())

	prev := []string{"Keurig K-Mini Single Serve Coffee Maker", "Mr. Coffee 12-Cup Coffee Maker"}
	res := e.Extract(context.Background(), "under $30", prev)

	if len(res.Products) != 1 {
		t.Fatalf("got %d products, want 1", len(res.Products))
	}
	p := res.Products[0]
	if p.ProductType != "coffee maker" {
		t.Errorf("ProductType = %q, want %q", p.ProductType, "coffee maker")
	}
	if p.PriceRange.Max == nil || *p.PriceRange.Max != 30 {
		t.Errorf("Max = %v, want 30", p.PriceRange.Max)
	}
	if !containsKeyword(p.SearchKeywords, "coffee maker") {
		t.Errorf("SearchKeywords = %v, missing prior category", p.SearchKeywords)
	}
	if len(res.SharedContext.PreviousProducts) != 2 {
		t.Errorf("PreviousProducts = %v", res.SharedContext.PreviousProducts)
	}
}

func TestExtract_PreviousTitlesReachLLMPrompt(t *testing.T) {
	var gotPrompt string
	llm := &mockLLM{
		generateFunc: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return `{
				"products": [
					{"product_type": "coffee maker", "search_keywords": ["coffee maker"], "price_range": {"min": null, "max": 30}}
				],
				"shared_context": {}
			}`, nil
		},
	}
	e := New(llm, log.NewNopLogger())

	res := e.Extract(context.Background(), "something cheaper", []string{"Keurig K-Mini", "Ninja Blender"})

	if llm.callCount != 1 {
		t.Fatalf("LLM callCount = %d, want 1", llm.callCount)
	}
	if !strings.Contains(gotPrompt, "Keurig K-Mini") || !strings.Contains(gotPrompt, "Ninja Blender") {
		t.Errorf("prompt missing previous titles:\n%s", gotPrompt)
	}
	if len(res.Products) != 1 || res.Products[0].ProductType != "coffee maker" {
		t.Errorf("products = %+v", res.Products)
	}
}

func containsKeyword(keywords []string, want string) bool {
	for _, kw := range keywords {
		if kw == want {
			return true
		}
	}
	return false
}
