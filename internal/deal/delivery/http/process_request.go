package http

import (
	"github.com/gin-gonic/gin"
)

// processFindDealsReq binds and validates the find deals request body.
func (h *handler) processFindDealsReq(c *gin.Context) (findDealsReq, error) {
	var req findDealsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
