package usecase

import (
	"fmt"

	"deal-finder/internal/model"
)

// followups proposes up to three next questions based on what the turn found
// and what the conversation already knows.
func followups(products []model.Product, state *model.ConversationState) []string {
	var qs []string

	if len(products) >= 2 {
		qs = append(qs, "Would you like me to compare these options?")
	}

	if len(products) >= 2 {
		if _, hasBudget := state.AppliedFilters["max_price"]; !hasBudget {
			minP, maxP := priceBounds(products)
			if maxP > minP*2 {
				qs = append(qs, fmt.Sprintf("Prices range from $%.2f to $%.2f. Do you have a budget in mind?", minP, maxP))
			}
		}
	}

	if cond, ok := state.UserPreferences["condition"]; ok && cond != "" {
		qs = append(qs, fmt.Sprintf("Should I keep showing only %s items?", cond))
	} else if persona, ok := state.UserPreferences["persona"]; ok && persona != "" && len(products) > 0 {
		qs = append(qs, fmt.Sprintf("Should these work for %s?", persona))
	} else if len(products) > 0 {
		qs = append(qs, "Want more details on any of these?")
	}

	if len(qs) > followupLimit {
		qs = qs[:followupLimit]
	}
	return qs
}
