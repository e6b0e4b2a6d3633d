package intent

import (
	"regexp"
	"strings"
)

var (
	comparisonMarkers = []string{
		"which is cheapest", "which one is cheapest", "cheapest",
		"compare", "comparison", "difference between", "which is better",
		"which one is better", " vs ", "versus",
	}

	refineMarkers = []string{
		"cheaper", "less expensive", "only show", "filter", "narrow",
		"in stock only",
	}

	recommendationMarkers = []string{
		"which should i", "what should i", "recommend", "suggest",
		"best for", "best one",
	}

	questionMarkers = []string{
		"tell me about", "tell me more", "more info", "more details",
		"details about", "does it", "is it", "how much is", "what about",
	}

	confirmationWords = map[string]struct{}{
		"yes": {}, "yeah": {}, "yep": {}, "ok": {}, "okay": {}, "sure": {},
	}

	ordinalRe = regexp.MustCompile(`\b(first|second|third|fourth|fifth|last)\b|\B#\d+\b|\b\d+(st|nd|rd|th)\b`)
	priceRe   = regexp.MustCompile(`(?i)\b(under|below|less than|up to|max|over|above|at least|more than)\s*\$?\d`)
)

// classifyByRules resolves unambiguous turns without an LLM call. The bool
// return reports whether a rule matched. Callers guarantee prior products
// exist; rules here only distinguish follow-up intents.
func classifyByRules(query string) (Result, bool) {
	q := strings.ToLower(strings.TrimSpace(query))

	if _, ok := confirmationWords[strings.Trim(q, "!. ")]; ok {
		return Result{
			Intent:             IntentConfirmation,
			ReferencesPrevious: true,
			Explanation:        "short confirmation word",
		}, true
	}

	for _, m := range comparisonMarkers {
		if strings.Contains(q, m) {
			return Result{
				Intent:             IntentComparison,
				ReferencesPrevious: true,
				Explanation:        "comparison phrase: " + m,
			}, true
		}
	}

	for _, m := range recommendationMarkers {
		if strings.Contains(q, m) {
			return Result{
				Intent:             IntentRecommendation,
				ReferencesPrevious: true,
				Explanation:        "recommendation phrase: " + m,
			}, true
		}
	}

	if ref := ordinalRe.FindString(q); ref != "" {
		return Result{
			Intent:                   IntentQuestion,
			ReferencesPrevious:       true,
			SpecificProductReference: strings.TrimPrefix(ref, "#"),
			Explanation:              "ordinal reference to a shown product",
		}, true
	}

	for _, m := range questionMarkers {
		if strings.Contains(q, m) {
			return Result{
				Intent:             IntentQuestion,
				ReferencesPrevious: true,
				Explanation:        "question phrase: " + m,
			}, true
		}
	}

	// A bare price bound on top of existing results narrows them.
	if priceRe.MatchString(q) && !strings.Contains(q, "find") && !strings.Contains(q, "search") && !strings.Contains(q, "show me") {
		return Result{
			Intent:             IntentRefine,
			ReferencesPrevious: true,
			RequiresSearch:     true,
			Explanation:        "price bound applied to current results",
		}, true
	}

	for _, m := range refineMarkers {
		if strings.Contains(q, m) {
			return Result{
				Intent:             IntentRefine,
				ReferencesPrevious: true,
				RequiresSearch:     true,
				Explanation:        "refinement phrase: " + m,
			}, true
		}
	}

	return Result{}, false
}
