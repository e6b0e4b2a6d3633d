package gemini

import "time"

const (
	// DefaultBaseURL is the Gemini generateContent endpoint root
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the default model to use
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
