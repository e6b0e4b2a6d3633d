package conversation

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"deal-finder/internal/model"
)

// MemoryStore is an in-process Store with TTL eviction. Idle conversations
// disappear after the TTL; callers create fresh state on miss.
type MemoryStore struct {
	states *expirable.LRU[string, *model.ConversationState]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore holding up to size conversations for
// ttl each. Zero values fall back to 10000 entries and 30 minutes.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = 10000
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MemoryStore{
		states: expirable.NewLRU[string, *model.ConversationState](size, nil, ttl),
	}
}

// Load implements Store
func (s *MemoryStore) Load(ctx context.Context, id string) (*model.ConversationState, error) {
	state, ok := s.states.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return state, nil
}

// Save implements Store
func (s *MemoryStore) Save(ctx context.Context, state *model.ConversationState) error {
	state.UpdatedAt = time.Now()
	s.states.Add(state.ID, state)
	return nil
}
