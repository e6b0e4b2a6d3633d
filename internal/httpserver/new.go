package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"deal-finder/internal/conversation"
	"deal-finder/internal/search"
	"deal-finder/pkg/llmprovider"
	"deal-finder/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Deal domain
	llm          *llmprovider.Manager
	orchestrator *search.Orchestrator
	conv         *conversation.Manager
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	LLM          *llmprovider.Manager
	Orchestrator *search.Orchestrator
	Conversation *conversation.Manager
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		llm:          cfg.LLM,
		orchestrator: cfg.Orchestrator,
		conv:         cfg.Conversation,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	if srv.orchestrator == nil {
		return errors.New("search orchestrator is required")
	}
	if srv.conv == nil {
		return errors.New("conversation manager is required")
	}
	return nil
}
