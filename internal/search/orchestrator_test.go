package search

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"deal-finder/internal/model"
	"deal-finder/pkg/log"
)

type mockProvider struct {
	name       string
	searchFunc func(ctx context.Context, q Query) ([]RawProduct, error)
	callCount  atomic.Int64
}

func (m *mockProvider) Search(ctx context.Context, q Query) ([]RawProduct, error) {
	m.callCount.Add(1)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, q)
	}
	return nil, errors.New("not configured")
}

func (m *mockProvider) Name() string { return m.name }

func rawRecords(n int, prefix string) []RawProduct {
	records := make([]RawProduct, n)
	for i := range records {
		records[i] = RawProduct{
			"product_id": prefix + string(rune('a'+i)),
			"title":      prefix + " product",
			"price":      float64(10 + i),
			"source":     prefix,
		}
	}
	return records
}

func testConfig() Config {
	return Config{
		CacheTTL:    time.Hour,
		MinInterval: time.Millisecond,
		CallTimeout: time.Second,
	}
}

func TestSearch_CacheIdempotent(t *testing.T) {
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			return rawRecords(3, "sa"), nil
		},
	}
	o := New([]Provider{p}, testConfig(), log.NewNopLogger())

	max := 50.0
	first := o.Search(context.Background(), "blender", nil, &max, "", 5)
	second := o.Search(context.Background(), "blender", nil, &max, "", 5)

	if p.callCount.Load() != 1 {
		t.Errorf("provider called %d times, want 1 (second call cached)", p.callCount.Load())
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("lens = %d, %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cached result differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSearch_DifferentBoundsMissCache(t *testing.T) {
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			return rawRecords(1, "sa"), nil
		},
	}
	o := New([]Provider{p}, testConfig(), log.NewNopLogger())

	max1, max2 := 50.0, 60.0
	o.Search(context.Background(), "blender", nil, &max1, "", 5)
	o.Search(context.Background(), "blender", nil, &max2, "", 5)

	if p.callCount.Load() != 2 {
		t.Errorf("provider called %d times, want 2", p.callCount.Load())
	}
}

func TestSearch_MaxResultsCapped(t *testing.T) {
	var seen atomic.Int64
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			seen.Store(int64(q.MaxResults))
			return rawRecords(q.MaxResults, "sa"), nil
		},
	}
	o := New([]Provider{p}, testConfig(), log.NewNopLogger())

	products := o.Search(context.Background(), "socks", nil, nil, "", 50)

	if seen.Load() != MaxResultsCap {
		t.Errorf("provider saw MaxResults=%d, want %d", seen.Load(), MaxResultsCap)
	}
	if len(products) > MaxResultsCap {
		t.Errorf("got %d products, cap is %d", len(products), MaxResultsCap)
	}
}

func TestSearch_ProviderFailureYieldsOtherResults(t *testing.T) {
	failing := &mockProvider{
		name: "walmart",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			return nil, errors.New("upstream 503")
		},
	}
	healthy := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			return rawRecords(2, "sa"), nil
		},
	}
	o := New([]Provider{failing, healthy}, testConfig(), log.NewNopLogger())

	products := o.Search(context.Background(), "lamp", nil, nil, "", 5)

	if len(products) != 2 {
		t.Fatalf("got %d products, want 2 from healthy provider", len(products))
	}
	for _, p := range products {
		if p.Retailer != "sa" {
			t.Errorf("unexpected retailer %q", p.Retailer)
		}
	}
}

func TestSearch_AllProvidersFailedNotCached(t *testing.T) {
	var calls atomic.Int64
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("upstream 503")
			}
			return rawRecords(2, "sa"), nil
		},
	}
	o := New([]Provider{p}, testConfig(), log.NewNopLogger())

	first := o.Search(context.Background(), "blender", nil, nil, "", 5)
	if len(first) != 0 {
		t.Fatalf("got %d products during outage, want 0", len(first))
	}

	second := o.Search(context.Background(), "blender", nil, nil, "", 5)
	if calls.Load() != 2 {
		t.Errorf("provider consulted %d times, want 2 (outage result must not be cached)", calls.Load())
	}
	if len(second) != 2 {
		t.Errorf("got %d products after recovery, want 2", len(second))
	}

	// The successful result is cached as usual.
	o.Search(context.Background(), "blender", nil, nil, "", 5)
	if calls.Load() != 2 {
		t.Errorf("provider consulted %d times after recovery, want 2 (success cached)", calls.Load())
	}
}

func TestSearch_EmptySuccessIsCached(t *testing.T) {
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			return nil, nil
		},
	}
	o := New([]Provider{p}, testConfig(), log.NewNopLogger())

	o.Search(context.Background(), "unobtainium", nil, nil, "", 5)
	o.Search(context.Background(), "unobtainium", nil, nil, "", 5)

	if p.callCount.Load() != 1 {
		t.Errorf("provider called %d times, want 1 (genuinely empty result cached)", p.callCount.Load())
	}
}

func TestSearch_DifferentConditionMissesCache(t *testing.T) {
	var conditions []string
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			conditions = append(conditions, q.Condition)
			return rawRecords(1, "sa"), nil
		},
	}
	o := New([]Provider{p}, testConfig(), log.NewNopLogger())

	o.Search(context.Background(), "laptop", nil, nil, "refurbished", 5)
	o.Search(context.Background(), "laptop", nil, nil, "new", 5)

	if p.callCount.Load() != 2 {
		t.Errorf("provider called %d times, want 2", p.callCount.Load())
	}
	if len(conditions) != 2 || conditions[0] != "refurbished" || conditions[1] != "new" {
		t.Errorf("conditions forwarded = %v", conditions)
	}
}

func TestExecute_ForwardsRequestCondition(t *testing.T) {
	var got string
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			got = q.Condition
			return rawRecords(1, "sa"), nil
		},
	}
	o := New([]Provider{p}, testConfig(), log.NewNopLogger())

	o.Execute(context.Background(), []model.SearchRequest{
		{ProductType: "laptop", Condition: "used", SearchKeywords: []string{"laptop"}},
	})

	if got != "used" {
		t.Errorf("provider saw condition %q, want used", got)
	}
}

func TestExecute_PreservesRequestOrder(t *testing.T) {
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			// The slower first request must still come out first.
			if strings.Contains(q.Text, "laptop") {
				time.Sleep(30 * time.Millisecond)
			}
			return []RawProduct{{
				"product_id": q.Text,
				"title":      q.Text,
				"price":      9.99,
			}}, nil
		},
	}
	o := New([]Provider{p}, testConfig(), log.NewNopLogger())

	reqs := []model.SearchRequest{
		{ProductType: "laptop", SearchKeywords: []string{"laptop"}},
		{ProductType: "mouse", SearchKeywords: []string{"mouse"}},
	}

	products := o.Execute(context.Background(), reqs)

	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].Title != "laptop" || products[1].Title != "mouse" {
		t.Errorf("order not preserved: %q, %q", products[0].Title, products[1].Title)
	}
}

func TestExecute_TimeoutInOneRequestDoesNotCancelSiblings(t *testing.T) {
	p := &mockProvider{
		name: "searchapi",
		searchFunc: func(ctx context.Context, q Query) ([]RawProduct, error) {
			if strings.Contains(q.Text, "slow") {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return rawRecords(1, "sa"), nil
		},
	}
	cfg := testConfig()
	cfg.CallTimeout = 20 * time.Millisecond
	o := New([]Provider{p}, cfg, log.NewNopLogger())

	reqs := []model.SearchRequest{
		{SearchKeywords: []string{"slow", "thing"}},
		{SearchKeywords: []string{"fast", "thing"}},
	}

	products := o.Execute(context.Background(), reqs)

	if len(products) != 1 {
		t.Fatalf("got %d products, want 1 from the surviving request", len(products))
	}
}

func TestExecute_Empty(t *testing.T) {
	o := New(nil, testConfig(), log.NewNopLogger())
	if got := o.Execute(context.Background(), nil); got != nil {
		t.Errorf("Execute(nil) = %v, want nil", got)
	}
}
