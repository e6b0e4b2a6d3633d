package extract

import (
	"strings"

	"deal-finder/internal/model"
)

// synonymTable expands search keywords. At most two synonyms per keyword are
// added; multi-word entries are deliberately absent since retail search
// engines tokenize them unpredictably.
var synonymTable = map[string][]string{
	"laptop":     {"notebook", "ultrabook"},
	"laptops":    {"notebooks"},
	"phone":      {"smartphone", "mobile"},
	"phones":     {"smartphones"},
	"tv":         {"television"},
	"headphones": {"earphones", "headset"},
	"earbuds":    {"earphones"},
	"couch":      {"sofa"},
	"sofa":       {"couch"},
	"fridge":     {"refrigerator"},
	"bike":       {"bicycle"},
	"shoes":      {"sneakers", "footwear"},
	"sneakers":   {"shoes"},
	"bag":        {"handbag", "tote"},
	"backpack":   {"rucksack"},
	"watch":      {"timepiece"},
	"cheap":      {"affordable", "budget"},
	"affordable": {"budget"},
	"big":        {"large"},
	"small":      {"compact"},
	"fast":       {"quick"},
	"quiet":      {"silent"},
	"durable":    {"sturdy", "rugged"},
	"kettle":     {"teakettle"},
	"blender":    {"mixer"},
}

// positiveWords and negativeWords back the coarse polarity score.
var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "nice": {}, "best": {}, "premium": {}, "luxury": {},
	"comfortable": {}, "durable": {}, "reliable": {}, "stylish": {}, "beautiful": {},
	"powerful": {}, "excellent": {}, "quality": {}, "sturdy": {}, "fancy": {},
}

var negativeWords = map[string]struct{}{
	"cheap": {}, "bad": {}, "poor": {}, "flimsy": {}, "ugly": {}, "slow": {},
	"noisy": {}, "bulky": {}, "heavy": {}, "fragile": {}, "outdated": {},
}

// Enrich expands keywords with synonyms and scores attribute sentiment on
// every request. Keywords are only ever added, never removed.
func Enrich(reqs []model.SearchRequest) []model.SearchRequest {
	for i := range reqs {
		reqs[i].SearchKeywords = expandSynonyms(reqs[i].SearchKeywords)
		reqs[i].Sentiment = scorePolarity(reqs[i].KeyAttributes)
	}
	return reqs
}

func expandSynonyms(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		seen[strings.ToLower(kw)] = struct{}{}
	}

	expanded := keywords
	for _, kw := range keywords {
		for _, syn := range synonymTable[strings.ToLower(kw)] {
			if _, dup := seen[syn]; dup {
				continue
			}
			seen[syn] = struct{}{}
			expanded = append(expanded, syn)
		}
	}
	return expanded
}

// scorePolarity returns a polarity in [-1,1] over the attribute list.
// The score only biases description tone downstream, never filtering.
func scorePolarity(attrs []string) float64 {
	var score, matched float64
	for _, attr := range attrs {
		a := strings.ToLower(attr)
		if _, ok := positiveWords[a]; ok {
			score++
			matched++
		} else if _, ok := negativeWords[a]; ok {
			score--
			matched++
		}
	}
	if matched == 0 {
		return 0
	}
	return score / matched
}
