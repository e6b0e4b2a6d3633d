package searchapi

import "time"

const (
	// DefaultBaseURL is the SearchAPI.io search endpoint
	DefaultBaseURL = "https://www.searchapi.io/api/v1/search"

	// DefaultEngine is the default search engine
	DefaultEngine = "google_shopping"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
