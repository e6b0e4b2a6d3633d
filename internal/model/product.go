package model

import "time"

// Product represents a normalized product deal from any retailer.
type Product struct {
	ProductID     string   `json:"product_id"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	URL           string   `json:"url"`
	ImageURL      string   `json:"image_url,omitempty"`
	Retailer      string   `json:"retailer"`
	Description   string   `json:"description,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   int      `json:"review_count,omitempty"`
	Condition     string   `json:"condition,omitempty"`
	Available     bool     `json:"available"`
}

// ConversationState holds everything remembered about one conversation.
type ConversationState struct {
	ID                string
	CurrentProducts   []Product // ordered, replaced wholesale on new_search/refine
	LastQuery         string
	LastCategory      string
	AppliedFilters    map[string]string // merge-only
	LastIntent        string
	ConversationTurn  int
	ProductReferences map[string]string // ordinal phrase -> product id
	UserPreferences   map[string]string // merge-only
	Keywords          map[string]struct{}
	LastAction        string
	UpdatedAt         time.Time
}

// NewConversationState returns an empty state for the given conversation id.
func NewConversationState(id string) *ConversationState {
	return &ConversationState{
		ID:                id,
		AppliedFilters:    make(map[string]string),
		ProductReferences: make(map[string]string),
		UserPreferences:   make(map[string]string),
		Keywords:          make(map[string]struct{}),
	}
}
