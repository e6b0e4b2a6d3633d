package usecase

import (
	"testing"

	"deal-finder/internal/model"
)

func TestIsRelevant(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		query   string
		sc      model.SharedContext
		want    bool
	}{
		{
			name:    "loose token overlap passes",
			product: model.Product{Title: "Nike Running Shoes", Price: 59.99},
			query:   "nike shoes",
			want:    true,
		},
		{
			name:    "zero price rejected",
			product: model.Product{Title: "Nike Running Shoes", Price: 0},
			query:   "nike shoes",
			want:    false,
		},
		{
			name:    "magazine rejected",
			product: model.Product{Title: "Coffee Lovers Magazine Annual Issue", Price: 9.99},
			query:   "coffee maker",
			want:    false,
		},
		{
			name:    "subscription rejected",
			product: model.Product{Title: "Streaming Subscription 12 Months", Price: 99.99},
			query:   "streaming stick",
			want:    false,
		},
		{
			name:    "user manual rejected",
			product: model.Product{Title: "Keurig K-Elite User Manual", Price: 4.99},
			query:   "keurig",
			want:    false,
		},
		{
			name:    "no overlap rejected",
			product: model.Product{Title: "Garden Hose 50ft", Price: 19.99},
			query:   "coffee maker",
			want:    false,
		},
		{
			name:    "price words ignored in overlap",
			product: model.Product{Title: "Keurig Coffee Maker", Price: 45.00},
			query:   "coffee maker under $50",
			want:    true,
		},
		{
			name:    "gift occasion requires gift keyword",
			product: model.Product{Title: "Ceramic Mug", Price: 12.99},
			query:   "mug",
			sc:      model.SharedContext{Occasion: "gift"},
			want:    false,
		},
		{
			name:    "gift occasion matched in description",
			product: model.Product{Title: "Ceramic Mug", Price: 12.99, Description: "Perfect gift box included"},
			query:   "mug",
			sc:      model.SharedContext{Occasion: "gift"},
			want:    true,
		},
		{
			name:    "wedding occasion matched in title",
			product: model.Product{Title: "Bridal Shower Decorations", Price: 25.00},
			query:   "decorations",
			sc:      model.SharedContext{Occasion: "wedding"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRelevant(tt.product, tt.query, tt.sc); got != tt.want {
				t.Errorf("isRelevant(%q, %q) = %v, want %v", tt.product.Title, tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterRelevant_Dedup(t *testing.T) {
	products := []model.Product{
		{ProductID: "p1", Title: "Nike Shoes", Price: 50, Retailer: "walmart"},
		{ProductID: "p1", Title: "Nike Shoes", Price: 50, Retailer: "walmart"},
		{ProductID: "p1", Title: "Nike Shoes Alt Listing", Price: 52, Retailer: "searchapi"},
	}

	got := filterRelevant(products, "nike shoes", model.SharedContext{})
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2 (same id at different retailers kept)", len(got))
	}
	if got[0].Retailer != "walmart" || got[1].Retailer != "searchapi" {
		t.Errorf("order not preserved: %+v", got)
	}
}
