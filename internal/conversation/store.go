package conversation

import (
	"context"
	"errors"

	"deal-finder/internal/model"
)

// ErrNotFound indicates no state exists for the conversation id.
var ErrNotFound = errors.New("conversation not found")

// Store persists conversation state between turns.
type Store interface {
	// Load returns the state for the conversation id, or ErrNotFound
	Load(ctx context.Context, id string) (*model.ConversationState, error)

	// Save persists the state
	Save(ctx context.Context, state *model.ConversationState) error
}
