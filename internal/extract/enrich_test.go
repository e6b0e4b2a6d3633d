package extract

import (
	"testing"

	"deal-finder/internal/model"
)

func TestEnrich_SynonymsAddButNeverRemove(t *testing.T) {
	reqs := []model.SearchRequest{{
		ProductType:    "laptop",
		SearchKeywords: []string{"cheap", "laptop"},
	}}

	out := Enrich(reqs)

	kws := out[0].SearchKeywords
	for _, original := range []string{"cheap", "laptop"} {
		if !containsKeyword(kws, original) {
			t.Errorf("original keyword %q was removed: %v", original, kws)
		}
	}
	for _, syn := range []string{"affordable", "budget", "notebook"} {
		if !containsKeyword(kws, syn) {
			t.Errorf("expected synonym %q in %v", syn, kws)
		}
	}
}

func TestEnrich_NoDuplicateSynonyms(t *testing.T) {
	reqs := []model.SearchRequest{{
		SearchKeywords: []string{"couch", "sofa"},
	}}

	kws := Enrich(reqs)[0].SearchKeywords
	counts := make(map[string]int)
	for _, kw := range kws {
		counts[kw]++
	}
	for kw, n := range counts {
		if n > 1 {
			t.Errorf("keyword %q appears %d times: %v", kw, n, kws)
		}
	}
}

func TestScorePolarity(t *testing.T) {
	tests := []struct {
		name  string
		attrs []string
		want  float64
	}{
		{"all positive", []string{"durable", "comfortable"}, 1},
		{"all negative", []string{"flimsy", "noisy"}, -1},
		{"mixed", []string{"durable", "noisy"}, 0},
		{"no sentiment words", []string{"wireless", "portable"}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorePolarity(tt.attrs); got != tt.want {
				t.Errorf("scorePolarity(%v) = %v, want %v", tt.attrs, got, tt.want)
			}
		})
	}
}
