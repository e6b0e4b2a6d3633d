package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deal-finder/config"
	"deal-finder/internal/conversation"
	"deal-finder/internal/httpserver"
	"deal-finder/internal/search"
	"deal-finder/pkg/llmprovider"
	"deal-finder/pkg/log"
	"deal-finder/pkg/rapidapi"
	"deal-finder/pkg/searchapi"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.InitializeZapLogger(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Deal Finder...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDurationOr(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDurationOr(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 4. Search providers
	var searchProviders []search.Provider

	if cfg.Search.SearchAPIKey != "" {
		client, saErr := searchapi.New(searchapi.Config{APIKey: cfg.Search.SearchAPIKey})
		if saErr != nil {
			logger.Warnf(ctx, "SearchAPI not available (optional): %v", saErr)
		} else {
			searchProviders = append(searchProviders, search.NewSearchAPIProvider(client))
			logger.Info(ctx, "SearchAPI provider initialized")
		}
	}

	if cfg.Search.RapidAPIKey != "" {
		client, raErr := rapidapi.New(rapidapi.Config{APIKey: cfg.Search.RapidAPIKey})
		if raErr != nil {
			logger.Warnf(ctx, "Walmart provider not available (optional): %v", raErr)
		} else {
			searchProviders = append(searchProviders, search.NewWalmartProvider(client))
			logger.Info(ctx, "Walmart provider initialized")
		}
	}

	if len(searchProviders) == 0 {
		logger.Warn(ctx, "No search providers configured, searches will return no results")
	}

	orchestrator := search.New(searchProviders, search.Config{
		CacheSize:   cfg.Search.CacheSize,
		CacheTTL:    cfg.Search.CacheTTL,
		MinInterval: cfg.Search.MinInterval,
		CallTimeout: cfg.Search.CallTimeout,
		MaxResults:  cfg.Search.MaxResults,
	}, logger)

	// 5. Conversation state
	store := conversation.NewMemoryStore(cfg.Conversation.MaxConversations, cfg.Conversation.TTL)
	conv := conversation.NewManager(store, logger)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		LLM:          llm,
		Orchestrator: orchestrator,
		Conversation: conv,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
