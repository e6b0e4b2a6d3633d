package conversation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"deal-finder/internal/intent"
	"deal-finder/internal/model"
	"deal-finder/pkg/log"
)

// Log prefixes
const (
	LogPrefixUpdate = "internal.conversation.Update"
)

var ordinalWords = []string{
	"first", "second", "third", "fourth", "fifth",
	"sixth", "seventh", "eighth", "ninth", "tenth",
}

// Manager owns conversation state transitions. Products are only ever
// replaced wholesale on search intents; filters and preferences merge.
type Manager struct {
	store Store
	l     log.Logger
}

// NewManager creates a new Manager
func NewManager(store Store, l log.Logger) *Manager {
	return &Manager{
		store: store,
		l:     l,
	}
}

// Begin loads the state for the id, creating it on miss, and advances the
// turn counter. Called exactly once per user query before classification.
func (m *Manager) Begin(ctx context.Context, id string) (*model.ConversationState, error) {
	state, err := m.store.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		state = model.NewConversationState(id)
	} else if err != nil {
		return nil, fmt.Errorf("load conversation %s: %w", id, err)
	}

	state.ConversationTurn++
	return state, nil
}

// Update applies one turn's outcome to the state and persists it. On
// new_search/refine the product set is replaced wholesale and ordinal
// references are rebuilt; all other intents leave products untouched.
func (m *Manager) Update(ctx context.Context, state *model.ConversationState, products []model.Product, it intent.Intent, filters map[string]string, query string) (*model.ConversationState, error) {
	state.LastIntent = string(it)
	state.LastQuery = query

	if it.RequiresSearch() {
		state.CurrentProducts = products
		state.ProductReferences = buildReferences(products)
		state.LastAction = "search"
	} else {
		state.LastAction = string(it)
	}

	for k, v := range filters {
		state.AppliedFilters[k] = v
	}

	if err := m.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save conversation %s: %w", state.ID, err)
	}

	m.l.Debugf(ctx, "%s: turn %d intent %s products %d",
		LogPrefixUpdate, state.ConversationTurn, it, len(state.CurrentProducts))
	return state, nil
}

// MergePreferences folds newly inferred preferences into the state without
// overwriting unrelated keys.
func (m *Manager) MergePreferences(state *model.ConversationState, prefs map[string]string) {
	for k, v := range prefs {
		state.UserPreferences[k] = v
	}
}

// RememberCategory records the product category driving the current search so
// later turns can resolve category-relative follow-ups.
func (m *Manager) RememberCategory(state *model.ConversationState, category string) {
	if category != "" {
		state.LastCategory = category
	}
}

// RememberKeywords adds extracted keywords to the conversation's keyword set.
func (m *Manager) RememberKeywords(state *model.ConversationState, keywords []string) {
	for _, kw := range keywords {
		state.Keywords[kw] = struct{}{}
	}
}

// buildReferences maps ordinal phrases and index positions to product ids so
// later turns can resolve "the second one" or "#2".
func buildReferences(products []model.Product) map[string]string {
	refs := make(map[string]string, len(products)*4)
	for i, p := range products {
		n := strconv.Itoa(i + 1)
		refs[n] = p.ProductID
		refs["#"+n] = p.ProductID
		refs[ordinalSuffix(i+1)] = p.ProductID
		if i < len(ordinalWords) {
			refs[ordinalWords[i]] = p.ProductID
		}
	}
	if len(products) > 0 {
		refs["last"] = products[len(products)-1].ProductID
	}
	return refs
}

func ordinalSuffix(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		if n%100 != 11 {
			suffix = "st"
		}
	case 2:
		if n%100 != 12 {
			suffix = "nd"
		}
	case 3:
		if n%100 != 13 {
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
