package intent

import (
	"context"
	"errors"
	"testing"

	"deal-finder/internal/model"
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

func stateWithProducts(turn int, n int) *model.ConversationState {
	st := model.NewConversationState("c1")
	st.ConversationTurn = turn
	st.LastQuery = "coffee maker under $50"
	for i := 0; i < n; i++ {
		st.CurrentProducts = append(st.CurrentProducts, model.Product{
			ProductID: string(rune('a' + i)),
			Title:     "Coffee Maker",
			Price:     float64(20 + i*10),
		})
	}
	return st
}

func TestClassify_FirstTurnIsNewSearch(t *testing.T) {
	llm := &mockLLM{}
	c := New(llm, log.NewNopLogger())

	res := c.Classify(context.Background(), "coffee maker under $50", model.NewConversationState("c1"))

	if res.Intent != IntentNewSearch {
		t.Errorf("Intent = %s, want new_search", res.Intent)
	}
	if !res.RequiresSearch {
		t.Error("RequiresSearch = false, want true")
	}
	if llm.callCount != 0 {
		t.Errorf("LLM called %d times on short-circuit path", llm.callCount)
	}
}

func TestClassify_NilStateIsNewSearch(t *testing.T) {
	c := New(&mockLLM{}, log.NewNopLogger())

	res := c.Classify(context.Background(), "anything", nil)
	if res.Intent != IntentNewSearch || !res.RequiresSearch {
		t.Errorf("got %+v, want new_search with requires_search", res)
	}
}

func TestClassify_Rules(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantIntent Intent
		wantSearch bool
	}{
		{"cheapest comparison", "which is cheapest?", IntentComparison, false},
		{"compare", "compare these for me", IntentComparison, false},
		{"confirmation", "yes", IntentConfirmation, false},
		{"confirmation punct", "okay!", IntentConfirmation, false},
		{"ordinal question", "tell me about the second one", IntentQuestion, false},
		{"hash reference", "what about #2", IntentQuestion, false},
		{"price refine", "under $30", IntentRefine, true},
		{"cheaper refine", "show cheaper options", IntentRefine, true},
		{"recommendation", "which should I buy?", IntentRecommendation, false},
	}

	llm := &mockLLM{}
	c := New(llm, log.NewNopLogger())
	state := stateWithProducts(2, 3)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(context.Background(), tt.query, state)
			if res.Intent != tt.wantIntent {
				t.Errorf("Classify(%q).Intent = %s, want %s", tt.query, res.Intent, tt.wantIntent)
			}
			if res.RequiresSearch != tt.wantSearch {
				t.Errorf("Classify(%q).RequiresSearch = %v, want %v", tt.query, res.RequiresSearch, tt.wantSearch)
			}
		})
	}

	if llm.callCount != 0 {
		t.Errorf("LLM called %d times on rule path", llm.callCount)
	}
}

func TestClassify_LLMPath(t *testing.T) {
	llm := &mockLLM{
		generateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "```json\n{\"intent\": \"clarification\", \"references_previous\": true, \"explanation\": \"user restating\"}\n```", nil
		},
	}
	c := New(llm, log.NewNopLogger())

	res := c.Classify(context.Background(), "I meant the red version of course, not blue, you know", stateWithProducts(2, 2))

	if res.Intent != IntentClarification {
		t.Errorf("Intent = %s, want clarification", res.Intent)
	}
	if res.RequiresSearch {
		t.Error("RequiresSearch = true for clarification")
	}
	if llm.callCount != 1 {
		t.Errorf("LLM callCount = %d, want 1", llm.callCount)
	}
}

func TestClassify_LLMFailureFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		fn   func(ctx context.Context, prompt string) (string, error)
	}{
		{"call error", func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("timeout")
		}},
		{"no json", func(ctx context.Context, prompt string) (string, error) {
			return "I think the user wants to chat", nil
		}},
		{"malformed json", func(ctx context.Context, prompt string) (string, error) {
			return `{"intent": }`, nil
		}},
		{"unknown intent", func(ctx context.Context, prompt string) (string, error) {
			return `{"intent": "purchase"}`, nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&mockLLM{generateFunc: tt.fn}, log.NewNopLogger())
			res := c.Classify(context.Background(), "hmm something ambiguous entirely unmatched", stateWithProducts(3, 2))
			if res.Intent != IntentNewSearch || !res.RequiresSearch {
				t.Errorf("got %+v, want fail-closed new_search", res)
			}
		})
	}
}
