package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"deal-finder/internal/deal"
	"deal-finder/internal/extract"
	"deal-finder/internal/intent"
	"deal-finder/internal/model"
)

// FindDeals runs one conversational turn end to end: classify, extract,
// search, validate, update state, synthesize. Internal failures degrade to a
// friendly message; the only error callers ever see is an empty query.
func (uc *implUseCase) FindDeals(ctx context.Context, sc model.Scope, input deal.FindDealsInput) (deal.FindDealsOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return deal.FindDealsOutput{}, deal.ErrEmptyQuery
	}

	convID := input.ConversationID
	if convID == "" {
		convID = uuid.NewString()
	}

	state, err := uc.conv.Begin(ctx, convID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: begin conversation: %v", LogPrefixFindDeals, err)
		state = model.NewConversationState(convID)
		state.ConversationTurn = 1
	}

	res := uc.classifier.Classify(ctx, query, state)
	uc.l.Infof(ctx, "%s: user %s turn %d intent %s", LogPrefixFindDeals, sc.UserID, state.ConversationTurn, res.Intent)

	var out deal.FindDealsOutput
	if res.Intent.RequiresSearch() {
		out = uc.runSearchTurn(ctx, query, res, state)
	} else {
		out = uc.runAnswerTurn(ctx, query, res, state)
	}

	out.ConversationID = convID
	out.Intent = string(res.Intent)
	return out, nil
}

// runSearchTurn handles new_search and refine intents.
func (uc *implUseCase) runSearchTurn(ctx context.Context, query string, res intent.Result, state *model.ConversationState) deal.FindDealsOutput {
	var prevTitles []string
	if extract.ShouldInjectContext(query, state.CurrentProducts) {
		prevTitles = extract.PreviousTitles(state.CurrentProducts)
	}
	extraction := uc.extractor.Extract(ctx, query, prevTitles)

	prefs := preferencesFrom(query, extraction, res)
	if cond := searchCondition(prefs, state); cond != "" {
		for i := range extraction.Products {
			extraction.Products[i].Condition = cond
		}
	}

	found := uc.search.Execute(ctx, extraction.Products)
	valid := filterRelevant(found, query, extraction.SharedContext)
	uc.l.Debugf(ctx, "%s: %d raw results, %d after validation", LogPrefixFindDeals, len(found), len(valid))

	uc.conv.MergePreferences(state, prefs)
	uc.conv.RememberKeywords(state, keywordsFrom(extraction))
	if len(extraction.Products) > 0 {
		uc.conv.RememberCategory(state, extraction.Products[0].ProductType)
	}

	state, err := uc.conv.Update(ctx, state, valid, res.Intent, filtersFrom(extraction), query)
	if err != nil {
		uc.l.Errorf(ctx, "%s: update conversation: %v", LogPrefixFindDeals, err)
	}

	out := deal.FindDealsOutput{
		Message:  uc.synthesize(ctx, query, valid),
		Products: valid,
	}
	if state != nil {
		out.FollowupQuestions = followups(valid, state)
	}
	return out
}

// runAnswerTurn handles the read-only intents. Products are never touched.
func (uc *implUseCase) runAnswerTurn(ctx context.Context, query string, res intent.Result, state *model.ConversationState) deal.FindDealsOutput {
	var message string
	switch res.Intent {
	case intent.IntentComparison, intent.IntentRecommendation:
		message = uc.compareProducts(ctx, query, state.CurrentProducts)
	case intent.IntentQuestion:
		message = uc.answerQuestion(ctx, query, res.SpecificProductReference, state)
	case intent.IntentConfirmation:
		if len(state.CurrentProducts) > 0 {
			message = fmt.Sprintf("Great! Here are the %d options again. Let me know if you want more details or a comparison.", len(state.CurrentProducts))
		} else {
			message = "Glad to help! What would you like to shop for next?"
		}
	default: // clarification
		message = "Could you tell me a bit more about what you're looking for? A product type or a budget helps a lot."
	}

	if res.Persona != "" {
		uc.conv.MergePreferences(state, map[string]string{"persona": res.Persona})
	}

	updated, err := uc.conv.Update(ctx, state, nil, res.Intent, nil, query)
	if err != nil {
		uc.l.Errorf(ctx, "%s: update conversation: %v", LogPrefixFindDeals, err)
		updated = state
	}

	return deal.FindDealsOutput{
		Message:           message,
		Products:          updated.CurrentProducts,
		FollowupQuestions: followups(nil, updated),
	}
}

// filtersFrom records the constraints this turn applied, for merge into the
// conversation's sticky filter set.
func filtersFrom(extraction extract.Result) map[string]string {
	filters := make(map[string]string)
	for _, req := range extraction.Products {
		if req.PriceRange.Max != nil {
			filters["max_price"] = fmt.Sprintf("%.2f", *req.PriceRange.Max)
		}
		if req.PriceRange.Min != nil {
			filters["min_price"] = fmt.Sprintf("%.2f", *req.PriceRange.Min)
		}
		if req.Color != "" {
			filters["color"] = req.Color
		}
		if req.Brand != "" {
			filters["brand"] = req.Brand
		}
	}
	if extraction.SharedContext.Occasion != "" {
		filters["occasion"] = extraction.SharedContext.Occasion
	}
	return filters
}

// preferencesFrom infers durable user preferences from a single turn.
func preferencesFrom(query string, extraction extract.Result, res intent.Result) map[string]string {
	prefs := make(map[string]string)
	if res.Persona != "" {
		prefs["persona"] = res.Persona
	}
	if extraction.SharedContext.OverallBudget != nil {
		prefs["budget"] = fmt.Sprintf("%.2f", *extraction.SharedContext.OverallBudget)
	}
	if extraction.SharedContext.Location != "" {
		prefs["location"] = extraction.SharedContext.Location
	}
	for _, req := range extraction.Products {
		if req.PriceRange.Max != nil {
			prefs["max_price"] = fmt.Sprintf("%.2f", *req.PriceRange.Max)
		}
	}
	if cond := conditionFrom(query); cond != "" {
		prefs["condition"] = cond
	}
	return prefs
}

// searchCondition resolves the condition constraint for this turn: an
// explicit mention wins, otherwise the remembered preference applies.
func searchCondition(prefs map[string]string, state *model.ConversationState) string {
	if cond := prefs["condition"]; cond != "" {
		return cond
	}
	return state.UserPreferences["condition"]
}

// conditionFrom picks up an explicit item-condition mention in the query.
func conditionFrom(query string) string {
	lower := " " + strings.ToLower(query) + " "
	switch {
	case strings.Contains(lower, "refurbished"):
		return "refurbished"
	case strings.Contains(lower, " used "), strings.Contains(lower, "second hand"), strings.Contains(lower, "secondhand"):
		return "used"
	case strings.Contains(lower, "brand new"), strings.Contains(lower, " new "):
		return "new"
	}
	return ""
}

func keywordsFrom(extraction extract.Result) []string {
	var kws []string
	for _, req := range extraction.Products {
		kws = append(kws, req.SearchKeywords...)
	}
	return kws
}
