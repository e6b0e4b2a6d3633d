package conversation

import (
	"context"
	"testing"
	"time"

	"deal-finder/internal/intent"
	"deal-finder/internal/model"
	"deal-finder/pkg/log"
)

func testProducts(n int) []model.Product {
	products := make([]model.Product, n)
	for i := range products {
		products[i] = model.Product{
			ProductID: "p" + string(rune('1'+i)),
			Title:     "Product",
			Price:     float64(10 * (i + 1)),
		}
	}
	return products
}

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(100, time.Minute), log.NewNopLogger())
}

func TestBegin_CreatesOnMissAndIncrementsTurn(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	state, err := m.Begin(ctx, "c1")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if state.ConversationTurn != 1 {
		t.Errorf("turn = %d, want 1", state.ConversationTurn)
	}

	// Until saved, Begin again still creates fresh state.
	if _, err := m.Update(ctx, state, nil, intent.IntentNewSearch, nil, "q"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	state, err = m.Begin(ctx, "c1")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if state.ConversationTurn != 2 {
		t.Errorf("turn = %d, want 2", state.ConversationTurn)
	}
}

func TestTurnIncrementsOncePerQueryRegardlessOfIntent(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	intents := []intent.Intent{
		intent.IntentNewSearch,
		intent.IntentComparison,
		intent.IntentQuestion,
		intent.IntentRefine,
		intent.IntentConfirmation,
	}

	for i, it := range intents {
		state, err := m.Begin(ctx, "c1")
		if err != nil {
			t.Fatalf("Begin: %v", err)
		}
		if state.ConversationTurn != i+1 {
			t.Fatalf("turn = %d after query %d", state.ConversationTurn, i+1)
		}
		if _, err := m.Update(ctx, state, testProducts(1), it, nil, "q"); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func TestUpdate_SearchIntentsReplaceProductsWholesale(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	state, _ := m.Begin(ctx, "c1")
	state, _ = m.Update(ctx, state, testProducts(3), intent.IntentNewSearch, nil, "coffee maker")

	if len(state.CurrentProducts) != 3 {
		t.Fatalf("products = %d, want 3", len(state.CurrentProducts))
	}

	state, _ = m.Begin(ctx, "c1")
	state, _ = m.Update(ctx, state, testProducts(1), intent.IntentRefine, nil, "under $20")

	if len(state.CurrentProducts) != 1 {
		t.Errorf("products = %d after refine, want 1 (wholesale replace)", len(state.CurrentProducts))
	}
}

func TestUpdate_ReadOnlyIntentsPreserveProducts(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	state, _ := m.Begin(ctx, "c1")
	state, _ = m.Update(ctx, state, testProducts(3), intent.IntentNewSearch, nil, "coffee maker")

	for _, it := range []intent.Intent{
		intent.IntentComparison,
		intent.IntentRecommendation,
		intent.IntentQuestion,
		intent.IntentClarification,
		intent.IntentConfirmation,
	} {
		state, _ = m.Begin(ctx, "c1")
		state, _ = m.Update(ctx, state, nil, it, nil, "which is cheapest?")
		if len(state.CurrentProducts) != 3 {
			t.Errorf("intent %s changed products: %d, want 3", it, len(state.CurrentProducts))
		}
	}
}

func TestUpdate_FiltersMergeNeverReplace(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	state, _ := m.Begin(ctx, "c1")
	state, _ = m.Update(ctx, state, testProducts(1), intent.IntentNewSearch,
		map[string]string{"max_price": "50"}, "q1")

	state, _ = m.Begin(ctx, "c1")
	state, _ = m.Update(ctx, state, testProducts(1), intent.IntentRefine,
		map[string]string{"color": "red"}, "q2")

	if state.AppliedFilters["max_price"] != "50" {
		t.Errorf("earlier filter lost: %v", state.AppliedFilters)
	}
	if state.AppliedFilters["color"] != "red" {
		t.Errorf("new filter missing: %v", state.AppliedFilters)
	}
}

func TestBuildReferences(t *testing.T) {
	products := testProducts(3)
	refs := buildReferences(products)

	want := map[string]string{
		"first":  "p1",
		"second": "p2",
		"third":  "p3",
		"1":      "p1",
		"#2":     "p2",
		"3rd":    "p3",
		"last":   "p3",
	}
	for phrase, id := range want {
		if refs[phrase] != id {
			t.Errorf("refs[%q] = %q, want %q", phrase, refs[phrase], id)
		}
	}
}

func TestMergePreferences(t *testing.T) {
	m := newTestManager()
	state := model.NewConversationState("c1")

	m.MergePreferences(state, map[string]string{"max_price": "50"})
	m.MergePreferences(state, map[string]string{"condition": "new"})

	if state.UserPreferences["max_price"] != "50" || state.UserPreferences["condition"] != "new" {
		t.Errorf("preferences = %v", state.UserPreferences)
	}
}

func TestRememberCategory(t *testing.T) {
	m := newTestManager()
	state := model.NewConversationState("c1")

	m.RememberCategory(state, "coffee maker")
	if state.LastCategory != "coffee maker" {
		t.Errorf("LastCategory = %q, want coffee maker", state.LastCategory)
	}

	m.RememberCategory(state, "")
	if state.LastCategory != "coffee maker" {
		t.Errorf("empty category overwrote LastCategory: %q", state.LastCategory)
	}
}

func TestMemoryStore_TTLAndMiss(t *testing.T) {
	store := NewMemoryStore(10, 50*time.Millisecond)
	ctx := context.Background()

	if _, err := store.Load(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Load(missing) err = %v, want ErrNotFound", err)
	}

	state := model.NewConversationState("c1")
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Load(ctx, "c1"); err != nil {
		t.Fatalf("Load after save: %v", err)
	}

	time.Sleep(120 * time.Millisecond)
	if _, err := store.Load(ctx, "c1"); err != ErrNotFound {
		t.Errorf("Load after TTL err = %v, want ErrNotFound", err)
	}
}
