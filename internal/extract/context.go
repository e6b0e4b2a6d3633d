package extract

import (
	"strings"

	"deal-finder/internal/model"
)

// ShouldInjectContext decides whether the previous turn's products should be
// merged into the current query's extraction. Injection happens only when
// prior products exist and the query is short (fewer than 5 tokens) or
// contains an explicit follow-up marker. Longer self-contained queries start
// fresh so unrelated searches stay unpolluted.
func ShouldInjectContext(query string, prev []model.Product) bool {
	if len(prev) == 0 {
		return false
	}

	tokens := tokenize(query)
	if len(tokens) < 5 {
		return true
	}

	for _, tok := range tokens {
		if _, ok := followUpMarkers[tok]; ok {
			return true
		}
	}

	return false
}

// PreviousTitles extracts the titles to carry into the next extraction.
func PreviousTitles(prev []model.Product) []string {
	titles := make([]string, 0, len(prev))
	for _, p := range prev {
		titles = append(titles, p.Title)
	}
	return titles
}

// maxContextKeywords bounds how much of a prior turn leaks into a follow-up
// search query.
const maxContextKeywords = 4

// productKeywordsFromTitles mines previously shown titles for product terms
// so a follow-up like "under $30" still searches the prior category. Lexicon
// nouns win; when no title contains one, the first title's meaningful tokens
// are used instead.
func productKeywordsFromTitles(titles []string) []string {
	var keywords []string
	seen := make(map[string]struct{})

	add := func(kw string) {
		if _, dup := seen[kw]; dup || len(keywords) >= maxContextKeywords {
			return
		}
		seen[kw] = struct{}{}
		keywords = append(keywords, kw)
	}

	for _, title := range titles {
		tokens := tokenize(title)
		for i := 0; i < len(tokens); i++ {
			if i+1 < len(tokens) {
				bigram := tokens[i] + " " + tokens[i+1]
				if _, ok := productBigrams[bigram]; ok {
					add(bigram)
					i++
					continue
				}
			}
			if _, ok := productNouns[tokens[i]]; ok {
				add(tokens[i])
			}
		}
	}
	if len(keywords) > 0 {
		return keywords
	}

	if len(titles) == 0 {
		return nil
	}
	for _, tok := range tokenize(titles[0]) {
		if isMoneyToken(tok) {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		add(tok)
	}
	return keywords
}

// withPreviousProducts folds prior product terms into a catch-all request.
// A bare-constraint query ("under $30") inherits the prior category outright;
// a query with its own keywords keeps them first.
func withPreviousProducts(req model.SearchRequest, titles []string) model.SearchRequest {
	prevKeywords := productKeywordsFromTitles(titles)
	if len(prevKeywords) == 0 {
		return req
	}

	if req.ProductType == genericProductType {
		req.ProductType = strings.Join(prevKeywords, " ")
		req.SearchKeywords = prevKeywords
		return req
	}

	req.SearchKeywords = append(req.SearchKeywords, prevKeywords...)
	return req
}
