package searchapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"deal-finder/pkg/searchapi"
)

func TestSearchShopping(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if q.Get("engine") != "google_shopping" {
			t.Errorf("engine = %q", q.Get("engine"))
		}
		if q.Get("q") != "wireless headphones" {
			t.Errorf("q = %q", q.Get("q"))
		}
		if q.Get("min_price") != "25" || q.Get("max_price") != "100" {
			t.Errorf("price params = %q..%q", q.Get("min_price"), q.Get("max_price"))
		}
		if q.Get("num") != "10" {
			t.Errorf("num = %q", q.Get("num"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"shopping_results": [
				{"product_id": "p1", "title": "Sony WH-1000XM5", "price": "$89.99", "source": "Best Buy"},
				{"product_id": "p2", "title": "JBL Tune", "price": "$39.99", "source": "Walmart"}
			]
		}`))
	}))
	defer ts.Close()

	client, err := searchapi.New(searchapi.Config{
		APIKey:  "test-key",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	minPrice := 25.0
	maxPrice := 100.0
	records, err := client.SearchShopping(context.Background(), searchapi.Query{
		Text:       "wireless headphones",
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("SearchShopping: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["title"] != "Sony WH-1000XM5" {
		t.Errorf("first title = %v", records[0]["title"])
	}
}

func TestSearchShopping_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "rate limit exceeded"}`))
	}))
	defer ts.Close()

	client, err := searchapi.New(searchapi.Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.SearchShopping(context.Background(), searchapi.Query{Text: "laptop"})
	if err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := searchapi.Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg = searchapi.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.BaseURL != searchapi.DefaultBaseURL {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Engine != searchapi.DefaultEngine {
		t.Errorf("Engine = %q", cfg.Engine)
	}
}
