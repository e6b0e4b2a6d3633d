package extract

import (
	"testing"

	"deal-finder/internal/model"
)

func TestShouldInjectContext(t *testing.T) {
	prev := []model.Product{{ProductID: "p1", Title: "Keurig K-Mini"}}

	tests := []struct {
		name  string
		query string
		prev  []model.Product
		want  bool
	}{
		{"short query with history", "cheaper ones", prev, true},
		{"four tokens", "show me red ones", prev, true},
		{"five tokens no marker", "show me some red sneakers", prev, false},
		{"long query with marker", "can you find more options like the ones before", prev, true},
		{"marker similar", "something similar but in a different color please", prev, true},
		{"long self-contained", "find me a brand new stainless steel kitchen knife set", prev, false},
		{"no history short", "cheaper ones", nil, false},
		{"no history marker", "show me more", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldInjectContext(tt.query, tt.prev); got != tt.want {
				t.Errorf("ShouldInjectContext(%q, %d prev) = %v, want %v",
					tt.query, len(tt.prev), got, tt.want)
			}
		})
	}
}

func TestPreviousTitles(t *testing.T) {
	titles := PreviousTitles([]model.Product{
		{Title: "Keurig K-Mini"},
		{Title: "Ninja Blender"},
	})

	if len(titles) != 2 || titles[1] != "Ninja Blender" {
		t.Errorf("PreviousTitles = %v", titles)
	}
}

func TestProductKeywordsFromTitles(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   []string
	}{
		{
			"bigram from title",
			[]string{"Keurig K-Mini Single Serve Coffee Maker"},
			[]string{"coffee maker"},
		},
		{
			"noun dedup across titles",
			[]string{"Ninja Professional Blender", "Vitamix Blender 5200"},
			[]string{"blender"},
		},
		{
			"fallback to first title tokens",
			[]string{"Anker PowerCore 10000"},
			[]string{"anker", "powercore"},
		},
		{"no titles", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productKeywordsFromTitles(tt.titles)
			if len(got) != len(tt.want) {
				t.Fatalf("keywords = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("keywords[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWithPreviousProducts(t *testing.T) {
	titles := []string{"Keurig K-Mini Single Serve Coffee Maker"}

	t.Run("generic request inherits prior category", func(t *testing.T) {
		req := withPreviousProducts(genericRequest("under $30"), titles)
		if req.ProductType != "coffee maker" {
			t.Errorf("ProductType = %q, want %q", req.ProductType, "coffee maker")
		}
		if len(req.SearchKeywords) != 1 || req.SearchKeywords[0] != "coffee maker" {
			t.Errorf("SearchKeywords = %v", req.SearchKeywords)
		}
	})

	t.Run("specific request keeps its own type", func(t *testing.T) {
		req := model.SearchRequest{ProductType: "kettle", SearchKeywords: []string{"kettle"}}
		got := withPreviousProducts(req, titles)
		if got.ProductType != "kettle" {
			t.Errorf("ProductType = %q, want kettle", got.ProductType)
		}
		if len(got.SearchKeywords) != 2 || got.SearchKeywords[1] != "coffee maker" {
			t.Errorf("SearchKeywords = %v", got.SearchKeywords)
		}
	})
}
