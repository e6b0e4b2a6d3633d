package deal

import "deal-finder/internal/model"

// FindDealsInput is the input for one conversational query.
type FindDealsInput struct {
	Query          string
	ConversationID string
}

// FindDealsOutput is the user-facing result of one query.
type FindDealsOutput struct {
	Message           string
	Products          []model.Product
	FollowupQuestions []string
	ConversationID    string
	Intent            string
}
