package usecase

import (
	"strings"

	"deal-finder/internal/model"
)

// titleBlacklist rejects accessory noise that shopping providers mix into
// product searches.
var titleBlacklist = []string{
	"magazine",
	"subscription",
	"user manual",
	"warranty",
	"replacement part",
}

// contextKeywords lists terms a result should carry when the query signals a
// specific occasion. One match anywhere in title or description is enough.
var contextKeywords = map[string][]string{
	"gift":    {"gift", "present", "set", "bundle", "box"},
	"wedding": {"wedding", "bridal", "bride", "groom", "anniversary"},
	"party":   {"party", "celebration", "birthday", "decor"},
	"work":    {"office", "work", "business", "professional", "desk"},
}

// queryStopTokens are query words that carry no product meaning and are
// skipped during the title overlap check.
var queryStopTokens = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "for": {}, "with": {}, "and": {}, "or": {},
	"under": {}, "over": {}, "below": {}, "above": {}, "between": {}, "to": {},
	"less": {}, "more": {}, "than": {}, "at": {}, "least": {}, "most": {},
	"max": {}, "up": {}, "find": {}, "me": {}, "show": {}, "i": {}, "need": {},
	"want": {}, "looking": {}, "some": {}, "good": {}, "cheap": {}, "best": {},
	"deal": {}, "deals": {}, "on": {}, "in": {}, "buy": {},
}

// isRelevant applies the post-search quality gates: a positive price, a title
// clear of the blacklist, occasion keywords when the context demands them,
// and at least a loose token overlap with the query.
func isRelevant(p model.Product, query string, sc model.SharedContext) bool {
	if p.Price <= 0 {
		return false
	}

	title := strings.ToLower(p.Title)
	for _, bad := range titleBlacklist {
		if strings.Contains(title, bad) {
			return false
		}
	}

	if kws, ok := contextKeywords[sc.Occasion]; ok {
		haystack := title + " " + strings.ToLower(p.Description)
		matched := false
		for _, kw := range kws {
			if strings.Contains(haystack, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return overlapsQuery(title, query)
}

// overlapsQuery checks that at least one meaningful query token appears in the
// title. The check is deliberately loose so "nike shoes" still matches
// "Nike Running Shoes". Queries with no meaningful tokens pass everything.
func overlapsQuery(title, query string) bool {
	meaningful := 0
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		tok = strings.Trim(tok, ".,!?;:\"'")
		if tok == "" || isMoneyish(tok) {
			continue
		}
		if _, stop := queryStopTokens[tok]; stop {
			continue
		}
		meaningful++
		if strings.Contains(title, tok) {
			return true
		}
	}
	return meaningful == 0
}

func isMoneyish(tok string) bool {
	if strings.HasPrefix(tok, "$") {
		return true
	}
	for _, r := range tok {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return false
		}
	}
	return true
}

// filterRelevant keeps only products that pass the quality gates and drops
// duplicates by retailer and product id, preserving order.
func filterRelevant(products []model.Product, query string, sc model.SharedContext) []model.Product {
	seen := make(map[string]struct{}, len(products))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !isRelevant(p, query, sc) {
			continue
		}
		key := p.Retailer + "|" + p.ProductID
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
