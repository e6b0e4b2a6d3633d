package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// newWalmartImpl creates a new Walmart implementation
func newWalmartImpl(cfg Config) *walmartImpl {
	return &walmartImpl{
		apiKey:     cfg.APIKey,
		host:       cfg.Host,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// SearchProducts runs a product search and returns the raw result records
func (w *walmartImpl) SearchProducts(ctx context.Context, q Query) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("page", "1")
	params.Set("sort", "price_low")
	if q.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		w.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("rapidapi: failed to create request: %w", err)
	}

	httpReq.Header.Set("X-RapidAPI-Key", w.apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", w.host)

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("rapidapi: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("rapidapi: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result walmartResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("rapidapi: failed to decode response: %w", err)
	}

	// Result groups are flattened; the cap is enforced downstream.
	var records []map[string]any
	for _, group := range result.SearchResult {
		records = append(records, group...)
	}
	if q.MaxResults > 0 && len(records) > q.MaxResults {
		records = records[:q.MaxResults]
	}

	return records, nil
}
