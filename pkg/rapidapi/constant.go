package rapidapi

import "time"

const (
	// DefaultBaseURL is the Walmart search endpoint on RapidAPI
	DefaultBaseURL = "https://walmart-api4.p.rapidapi.com/search"

	// DefaultHost is the RapidAPI host header value
	DefaultHost = "walmart-api4.p.rapidapi.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
