package rapidapi

import (
	"fmt"
	"net/http"
)

// Config holds RapidAPI Walmart client configuration
type Config struct {
	APIKey     string
	Host       string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("rapidapi: APIKey is required")
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// walmartImpl is the internal implementation of IWalmart
type walmartImpl struct {
	apiKey     string
	host       string
	baseURL    string
	httpClient *http.Client
}

// Query describes a product search
type Query struct {
	Text       string
	MinPrice   *float64
	MaxPrice   *float64
	MaxResults int
}

// walmartResponse is the RapidAPI Walmart response envelope. Results arrive
// as groups of untyped records.
type walmartResponse struct {
	SearchResult [][]map[string]any `json:"searchResult"`
}
