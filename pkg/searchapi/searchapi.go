package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// newSearchAPIImpl creates a new SearchAPI.io implementation
func newSearchAPIImpl(cfg Config) *searchAPIImpl {
	return &searchAPIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		engine:     cfg.Engine,
		httpClient: cfg.HTTPClient,
	}
}

// SearchShopping runs a shopping search and returns the raw result records
func (s *searchAPIImpl) SearchShopping(ctx context.Context, q Query) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("api_key", s.apiKey)
	params.Set("engine", s.engine)
	params.Set("q", q.Text)
	if q.MaxResults > 0 {
		params.Set("num", strconv.Itoa(q.MaxResults))
	}
	if q.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Condition != "" {
		params.Set("condition", q.Condition)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("searchapi: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("searchapi: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("searchapi: API error %d: %s", resp.StatusCode, errResp.Error)
		}
		return nil, fmt.Errorf("searchapi: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("searchapi: failed to decode response: %w", err)
	}

	return result.ShoppingResults, nil
}
