package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dealHTTP "deal-finder/internal/deal/delivery/http"
	dealUC "deal-finder/internal/deal/usecase"
	"deal-finder/internal/extract"
	"deal-finder/internal/intent"
	"deal-finder/internal/middleware"
)

// setupDealDomain initializes the deal domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create components: classifier, extractor, ...
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv HTTPServer) setupDealDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Components
	classifier := intent.New(srv.llm, srv.l)
	extractor := extract.New(srv.llm, srv.l)

	// 2. UseCase
	uc := dealUC.New(srv.l, srv.llm, classifier, extractor, srv.orchestrator, srv.conv)

	// 3. HTTP Handler
	h := dealHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/deals/find
	dealHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Deal domain registered")
	return nil
}
