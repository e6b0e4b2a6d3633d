package extract

import (
	"regexp"
	"strconv"

	"deal-finder/internal/model"
)

var (
	rangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)between\s*\$?(\d+(?:\.\d{1,2})?)\s*(?:and|to|-)\s*\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)\$(\d+(?:\.\d{1,2})?)\s*(?:-|to)\s*\$?(\d+(?:\.\d{1,2})?)`),
	}

	maxPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)under\s*\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)less\s*than\s*\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)below\s*\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)up\s*to\s*\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)max(?:imum)?\s*(?:of\s*)?\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)\$?(\d+(?:\.\d{1,2})?)\s*or\s*less`),
	}

	minPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)over\s*\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)above\s*\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)at\s*least\s*\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)more\s*than\s*\$?(\d+(?:\.\d{1,2})?)`),
	}

	budgetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)total\s+budget\s+(?:of\s+)?\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)budget\s+(?:of\s+)?\$?(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)spend\s+(?:up\s+to\s+)?\$?(\d+(?:\.\d{1,2})?)\s+total`),
		regexp.MustCompile(`(?i)altogether\s+(?:under|less\s+than)?\s*\$?(\d+(?:\.\d{1,2})?)`),
	}

	moneyTokenRe = regexp.MustCompile(`^\$?\d+(?:\.\d{1,2})?$`)
)

// ExtractPriceRange parses the first price constraint found in the query.
// Explicit ranges win over single bounds.
func ExtractPriceRange(query string) model.PriceRange {
	for _, re := range rangePatterns {
		if m := re.FindStringSubmatch(query); m != nil {
			lo, err1 := strconv.ParseFloat(m[1], 64)
			hi, err2 := strconv.ParseFloat(m[2], 64)
			if err1 == nil && err2 == nil {
				if lo > hi {
					lo, hi = hi, lo
				}
				return model.PriceRange{Min: &lo, Max: &hi}
			}
		}
	}

	for _, re := range maxPatterns {
		if m := re.FindStringSubmatch(query); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return model.PriceRange{Max: &v}
			}
		}
	}

	for _, re := range minPatterns {
		if m := re.FindStringSubmatch(query); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return model.PriceRange{Min: &v}
			}
		}
	}

	return model.PriceRange{}
}

// extractOverallBudget parses a total-budget phrase, if present.
func extractOverallBudget(query string) *float64 {
	for _, re := range budgetPatterns {
		if m := re.FindStringSubmatch(query); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return &v
			}
		}
	}
	return nil
}

// stripPricePhrases removes every recognized price phrase from the query so
// the leftovers can serve as search keywords.
func stripPricePhrases(query string) string {
	for _, re := range rangePatterns {
		query = re.ReplaceAllString(query, " ")
	}
	for _, re := range maxPatterns {
		query = re.ReplaceAllString(query, " ")
	}
	for _, re := range minPatterns {
		query = re.ReplaceAllString(query, " ")
	}
	return query
}

// isMoneyToken reports whether the token looks like a bare amount ("$50", "50").
func isMoneyToken(tok string) bool {
	return moneyTokenRe.MatchString(tok)
}
