package searchapi

import (
	"fmt"
	"net/http"
)

// Config holds SearchAPI.io client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	Engine     string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("searchapi: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Engine == "" {
		c.Engine = DefaultEngine
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// searchAPIImpl is the internal implementation of ISearchAPI
type searchAPIImpl struct {
	apiKey     string
	baseURL    string
	engine     string
	httpClient *http.Client
}

// Query describes a product search
type Query struct {
	Text       string
	MinPrice   *float64
	MaxPrice   *float64
	Condition  string
	MaxResults int
}

// searchResponse is the SearchAPI.io response envelope. Individual records
// stay untyped since the upstream schema varies per retailer.
type searchResponse struct {
	ShoppingResults []map[string]any `json:"shopping_results"`
}

type errorResponse struct {
	Error string `json:"error"`
}
