package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sentellent-console/config"
	"sentellent-console/internal/attachment"
	"sentellent-console/internal/auth"
	"sentellent-console/internal/console"
	consoleHTTP "sentellent-console/internal/console/delivery/http"
	consoleRepo "sentellent-console/internal/console/repository/agentapi"
	consoleUC "sentellent-console/internal/console/usecase"
	"sentellent-console/internal/httpserver"
	"sentellent-console/internal/middleware"
	"sentellent-console/pkg/agentapi"
	"sentellent-console/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Sentellent console gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Agent backend: %s", cfg.Agent.BaseURL)

	// 3. Agent backend client
	agentClient := agentapi.NewClient(cfg.Agent.BaseURL)
	if _, err := agentClient.Health(ctx); err != nil {
		logger.Warnf(ctx, "Agent backend not reachable yet (continuing): %v", err)
	}

	// 4. Console domain
	encoder := attachment.NewEncoder(cfg.Attachment.MaxSizeBytes, cfg.Attachment.AllowedTypes)

	repo := consoleRepo.New(logger, agentClient)

	var authProvider console.AuthProvider
	if cfg.Auth.Mode == config.AuthModeLocal {
		provider, authErr := auth.NewGoogleProvider(auth.Config{
			ClientID:     cfg.Auth.GoogleClientID,
			ClientSecret: cfg.Auth.GoogleClientSecret,
			RedirectURL:  cfg.Auth.RedirectURL,
			Scopes:       cfg.Auth.Scopes,
		})
		if authErr != nil {
			logger.Error(ctx, "Failed to initialize Google auth provider: ", authErr)
			return
		}
		authProvider = provider
		logger.Info(ctx, "Google auth: local provider")
	} else {
		logger.Info(ctx, "Google auth: delegated to agent backend")
	}

	uc := consoleUC.New(logger, repo, encoder, authProvider, consoleUC.Options{
		Greeting:           cfg.Session.Greeting,
		FailureMessage:     cfg.Session.FailureMessage,
		MemoryLoadCapacity: cfg.Session.MemoryLoadCapacity,
	})

	handler := consoleHTTP.New(logger, uc, cfg.Agent.DefaultUserID)

	// 5. HTTP server
	mw := middleware.New(logger, cfg.HTTPServer.AllowedOrigins, cfg.HTTPServer.RateLimitPerMin)

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		ConsoleHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
