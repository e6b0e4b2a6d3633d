package usecase

// Log prefixes
const (
	LogPrefixFindDeals = "internal.deal.usecase.FindDeals"
)

// User-facing messages for turns that produce no products.
const (
	MessageNoResults     = `I couldn't find any products matching your search. Want to try different terms or a wider price range?`
	MessageNothingToShow = `I don't have any products from a previous search yet. Tell me what you're shopping for and I'll find some deals.`
)

// PromptSummarize asks for a short conversational summary of search results.
// The reply must be plain text, one or two sentences, no markdown.
const PromptSummarize = `You are a friendly shopping assistant. Summarize these search results for the user in one or two plain sentences. Mention the number of results and the price range. Do not use markdown or bullet points.

User query: %q
Results: %d
Price range: $%.2f to $%.2f
Top picks: %s

Reply with the summary only.`

// PromptAnswer asks a grounded question about previously found products.
const PromptAnswer = `You are a friendly shopping assistant. Answer the user's question using only the product list below. If the list does not contain the answer, say so briefly. Reply in one or two plain sentences, no markdown.

Question: %q
Products:
%s

Reply with the answer only.`

// followupLimit caps the number of suggested follow-up questions per turn.
const followupLimit = 3
