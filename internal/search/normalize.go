package search

import (
	"strconv"
	"strings"

	"deal-finder/internal/model"
)

// normalizeRecord converts one raw provider record into the Product shape.
// Providers disagree on field names, so every field is extracted with
// fallback keys. The bool return is false when no usable price exists.
func normalizeRecord(raw RawProduct, defaultRetailer string) (model.Product, bool) {
	price, ok := extractPrice(raw)
	if !ok {
		return model.Product{}, false
	}

	p := model.Product{
		ProductID:   stringField(raw, "product_id", "productId", "id", "asin", "sellerId"),
		Title:       stringField(raw, "title", "name"),
		Price:       price,
		URL:         stringField(raw, "product_link", "productLink", "url", "link"),
		ImageURL:    stringField(raw, "thumbnail", "image_url", "image"),
		Retailer:    stringField(raw, "source", "retailer"),
		Description: stringField(raw, "description", "shortDescription"),
		Condition:   stringField(raw, "condition"),
		Available:   true,
	}

	if p.Retailer == "" {
		p.Retailer = defaultRetailer
	}
	if p.ProductID == "" {
		p.ProductID = p.URL
	}

	if v, ok := numberField(raw, "original_price", "originalPrice"); ok && v > 0 {
		p.OriginalPrice = &v
	}
	if v, ok := numberField(raw, "rating"); ok && v > 0 {
		p.Rating = &v
	} else if nested, ok := raw["rating"].(map[string]any); ok {
		if avg, ok := toNumber(nested["averageRating"]); ok && avg > 0 {
			p.Rating = &avg
		}
		if n, ok := toNumber(nested["numberOfReviews"]); ok {
			p.ReviewCount = int(n)
		}
	}
	if n, ok := numberField(raw, "reviews", "review_count"); ok {
		p.ReviewCount = int(n)
	}

	if status, ok := raw["availabilityStatusDisplayValue"].(string); ok {
		p.Available = strings.EqualFold(status, "in stock")
	}

	return p, true
}

// extractPrice finds a usable price under any known key, including the
// nested Walmart priceInfo block.
func extractPrice(raw RawProduct) (float64, bool) {
	if v, ok := numberField(raw, "extracted_price", "price"); ok && v > 0 {
		return v, true
	}
	if info, ok := raw["priceInfo"].(map[string]any); ok {
		if v, ok := toNumber(info["linePrice"]); ok && v > 0 {
			return v, true
		}
		if v, ok := toNumber(info["itemPrice"]); ok && v > 0 {
			return v, true
		}
	}
	return 0, false
}

func stringField(raw RawProduct, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func numberField(raw RawProduct, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := toNumber(raw[k]); ok {
			return v, true
		}
	}
	return 0, false
}

// toNumber accepts numbers and money strings ("$1,299.99").
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
