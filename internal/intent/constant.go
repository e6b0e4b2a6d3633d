package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
)

// Classifier prompt
const (
	PromptClassifySystem = `You are an intent classifier for a shopping assistant. Analyze the user's message and determine their intent.

Current message: "%s"
Previous query: "%s"
Products currently shown: %d

Possible intents:
1. new_search: the user wants to search for a new product
2. refine: the user wants to narrow or adjust the current results (price limit, color, brand)
3. comparison: the user wants to compare the products already shown
4. recommendation: the user asks which product they should pick
5. question: the user asks about one of the products shown
6. clarification: the user is clarifying something they said earlier
7. confirmation: the user is confirming a suggestion (yes/ok)

Return ONLY a JSON object with this format:
{
  "intent": "new_search|refine|comparison|recommendation|question|clarification|confirmation",
  "references_previous": true|false,
  "specific_product_reference": "first|second|third|... or empty",
  "persona": "optional shopper persona or empty",
  "requires_search": true|false,
  "explanation": "short reasoning"
}`
)

// Fallback reasons
const (
	ReasonNoHistory     = "no prior products, defaulting to new search"
	ReasonLLMFailed     = "LLM call failed, defaulting to new search"
	ReasonParseFailed   = "could not parse classifier response, defaulting to new search"
	ReasonUnknownIntent = "classifier returned unknown intent, defaulting to new search"
)
