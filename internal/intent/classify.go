package intent

import (
	"context"
	"encoding/json"
	"fmt"

	"deal-finder/internal/model"
	"deal-finder/pkg/llmprovider"
)

// Classify determines the intent of a user turn. It never returns an error;
// every failure falls closed to new_search with requires_search set.
func (c *RuleLLMClassifier) Classify(ctx context.Context, query string, state *model.ConversationState) Result {
	if state == nil || len(state.CurrentProducts) == 0 || state.ConversationTurn <= 1 {
		return fallbackResult(ReasonNoHistory)
	}

	if res, ok := classifyByRules(query); ok {
		c.l.Infof(ctx, "%s: rule match: %s (%s)", LogPrefixClassify, res.Intent, res.Explanation)
		return res
	}

	return c.classifyWithLLM(ctx, query, state)
}

func (c *RuleLLMClassifier) classifyWithLLM(ctx context.Context, query string, state *model.ConversationState) Result {
	prompt := fmt.Sprintf(PromptClassifySystem, query, state.LastQuery, len(state.CurrentProducts))

	text, err := c.llm.GenerateText(ctx, prompt)
	if err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ReasonLLMFailed, err)
		return fallbackResult(ReasonLLMFailed)
	}

	raw := llmprovider.FirstJSONObject(text)
	if raw == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ReasonParseFailed)
		return fallbackResult(ReasonParseFailed)
	}

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ReasonParseFailed, err)
		return fallbackResult(ReasonParseFailed)
	}

	if !res.Intent.Valid() {
		c.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ReasonUnknownIntent, res.Intent)
		return fallbackResult(ReasonUnknownIntent)
	}

	// requires_search from the model is advisory; the taxonomy decides.
	res.RequiresSearch = res.Intent.RequiresSearch()

	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, res.Intent)
	return res
}
