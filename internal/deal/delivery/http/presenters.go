package http

import (
	"github.com/gin-gonic/gin"

	"deal-finder/internal/deal"
	"deal-finder/internal/model"
)

// --- Request DTOs ---

type findDealsReq struct {
	Query          string `json:"query"           binding:"required,min=1,max=1000"`
	ConversationID string `json:"conversation_id" binding:"omitempty,max=64"`
}

func (r findDealsReq) validate() error { return nil }

func (r findDealsReq) toInput() deal.FindDealsInput {
	return deal.FindDealsInput{
		Query:          r.Query,
		ConversationID: r.ConversationID,
	}
}

func (r findDealsReq) scope(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:   c.GetHeader("X-User-ID"),
		Username: c.GetHeader("X-Username"),
	}
}

// --- Response DTOs ---

type findDealsResp struct {
	Message           string          `json:"message"`
	Products          []model.Product `json:"products"`
	FollowupQuestions []string        `json:"followup_questions,omitempty"`
	ConversationID    string          `json:"conversation_id"`
	Intent            string          `json:"intent"`
}

func (h *handler) newFindDealsResp(out deal.FindDealsOutput) findDealsResp {
	products := out.Products
	if products == nil {
		products = []model.Product{}
	}
	return findDealsResp{
		Message:           out.Message,
		Products:          products,
		FollowupQuestions: out.FollowupQuestions,
		ConversationID:    out.ConversationID,
		Intent:            out.Intent,
	}
}
