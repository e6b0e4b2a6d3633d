package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"deal-finder/internal/deal"
	"deal-finder/pkg/response"
)

// FindDeals godoc
// @Summary     Run one conversational shopping turn
// @Description Classifies the query, searches providers when needed, and returns products with a conversational summary.
// @Tags        Deals
// @Accept      json
// @Produce     json
// @Param       body body findDealsReq true "Query and optional conversation id"
// @Success     200  {object} findDealsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/deals/find [POST]
func (h *handler) FindDeals(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFindDealsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FindDeals(ctx, req.scope(c), req.toInput())
	if err != nil {
		if errors.Is(err, deal.ErrEmptyQuery) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.FindDeals: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newFindDealsResp(output))
}
