package extract

import (
	"regexp"
	"strings"

	"deal-finder/internal/model"
)

var tokenCleanRe = regexp.MustCompile(`[?!.,;:]+$`)

func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = tokenCleanRe.ReplaceAllString(f, "")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// parseFast scans the query for products from the noun lexicons, attaching
// adjectives, colors, and brands seen since the previous product. Money
// tokens never become product candidates. Returns nil when no lexicon noun
// matched.
func parseFast(query string) []model.SearchRequest {
	tokens := tokenize(query)
	priceRange := ExtractPriceRange(query)

	var requests []model.SearchRequest
	var attrs []string
	var color, brand string

	flushInto := func(productType string) {
		req := model.SearchRequest{
			ProductType:    productType,
			KeyAttributes:  attrs,
			Color:          color,
			Brand:          brand,
			PriceRange:     priceRange,
			SearchKeywords: buildKeywords(productType, attrs, color, brand),
		}
		requests = append(requests, req)
		attrs = nil
		color = ""
		brand = ""
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if isMoneyToken(tok) {
			continue
		}

		if i+1 < len(tokens) {
			bigram := tok + " " + tokens[i+1]
			if _, ok := productBigrams[bigram]; ok {
				flushInto(bigram)
				i++
				continue
			}
		}

		if _, ok := productNouns[tok]; ok {
			flushInto(tok)
			continue
		}
		if _, ok := colorTerms[tok]; ok {
			color = tok
			continue
		}
		if _, ok := brandTerms[tok]; ok {
			brand = tok
			continue
		}
		if _, ok := adjectiveTerms[tok]; ok {
			attrs = append(attrs, tok)
		}
	}

	// Trailing descriptors belong to the last product ("a blender, black").
	if len(requests) > 0 {
		last := &requests[len(requests)-1]
		if last.Color == "" && color != "" {
			last.Color = color
		}
		if last.Brand == "" && brand != "" {
			last.Brand = brand
		}
		if len(attrs) > 0 {
			last.KeyAttributes = append(last.KeyAttributes, attrs...)
		}
		last.SearchKeywords = buildKeywords(last.ProductType, last.KeyAttributes, last.Color, last.Brand)
	}

	return requests
}

// genericProductType marks a catch-all request whose query named no product.
const genericProductType = "item"

// genericRequest turns the whole query, minus stop-words and price phrases,
// into a single catch-all request.
func genericRequest(query string) model.SearchRequest {
	stripped := stripPricePhrases(query)
	tokens := tokenize(stripped)

	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isMoneyToken(tok) {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		keywords = append(keywords, tok)
	}

	productType := strings.Join(keywords, " ")
	if productType == "" {
		productType = genericProductType
	}

	return model.SearchRequest{
		ProductType:    productType,
		PriceRange:     ExtractPriceRange(query),
		SearchKeywords: keywords,
	}
}

func buildKeywords(productType string, attrs []string, color, brand string) []string {
	keywords := make([]string, 0, len(attrs)+3)
	if brand != "" {
		keywords = append(keywords, brand)
	}
	if color != "" {
		keywords = append(keywords, color)
	}
	keywords = append(keywords, attrs...)
	keywords = append(keywords, productType)
	return keywords
}

// extractSharedContext runs the occasion/urgency/location/budget heuristics.
func extractSharedContext(query string) model.SharedContext {
	return model.SharedContext{
		Occasion:      matchTag(query, occasionKeywords),
		Urgency:       extractUrgency(query),
		Location:      matchTag(query, locationKeywords),
		OverallBudget: extractOverallBudget(query),
	}
}

func matchTag(query string, table []taggedKeywords) string {
	q := strings.ToLower(query)
	for _, entry := range table {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return entry.tag
			}
		}
	}
	return ""
}

var urgencyPatterns = []struct {
	re  *regexp.Regexp
	tag string
}{
	{regexp.MustCompile(`need.*(today|now|asap|immediately|urgent)`), "immediate"},
	{regexp.MustCompile(`need.*(this|next)\s+week`), "this_week"},
	{regexp.MustCompile(`need.*(this|next)\s+month`), "this_month"},
	{regexp.MustCompile(`by\s+(this|next)`), "deadline"},
}

func extractUrgency(query string) string {
	q := strings.ToLower(query)
	for _, p := range urgencyPatterns {
		if p.re.MatchString(q) {
			return p.tag
		}
	}
	return ""
}
