package http

import (
	"github.com/gin-gonic/gin"

	"deal-finder/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	deals := rg.Group("/deals")
	{
		deals.POST("/find", mw.RequestID(), h.FindDeals)
	}
}
