package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"deal-finder/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l)
	api := srv.gin.Group("/api/v1")

	if err := srv.setupDealDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
