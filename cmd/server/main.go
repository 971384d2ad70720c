package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"

	_ "portfolio-core/docs"
	"portfolio-core/internal/application/service"
	"portfolio-core/internal/config"
	"portfolio-core/internal/database"
	"portfolio-core/internal/discord"
	"portfolio-core/internal/domain/events"
	"portfolio-core/internal/domain/profile"
	"portfolio-core/internal/github"
	infraDiscord "portfolio-core/internal/infrastructure/discord"
	infraGitHub "portfolio-core/internal/infrastructure/github"
	"portfolio-core/internal/infrastructure/storage"
	"portfolio-core/internal/logging"
	"portfolio-core/internal/middleware"
	"portfolio-core/internal/presentation/handlers"
	"portfolio-core/internal/webhook"

	"github.com/gin-gonic/gin"
)

// @title Portfolio Core API
// @version 1.0
// @description Backend of a personal portfolio: GitHub repository feed, Discord sign-in and contact form

// @contact.name Portfolio Maintainers

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

const sweepInterval = time.Minute

// backend is a profile storage the health check can ping
type backend interface {
	profile.Storage
	handlers.Pinger
}

func main() {
	logger, err := logging.Bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid logging configuration: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize storage backend of the profile slots
	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("storage ready", "driver", cfg.Storage.Driver)

	// Initialize infrastructure layer
	// External service clients
	githubClient := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Token, cfg.GitHub.Timeout)
	discordClient := discord.NewClient(cfg.Discord.APIURL, cfg.Discord.Timeout)
	webhookClient := webhook.NewClient(cfg.Contact.WebhookURL, cfg.Contact.Timeout)

	// Infrastructure implementations of domain services
	githubService := infraGitHub.NewGitHubService(githubClient)
	identityService := infraDiscord.NewIdentityService(discordClient)

	dispatcher := events.NewDispatcher(logger)
	stores := profile.NewStores(store, dispatcher)

	// Initialize application layer
	// Application services (use cases)
	authService := service.NewAuthService(identityService, logger)
	feedService := service.NewFeedService(githubService, cfg.GitHub.Username, logger)
	contactService := service.NewContactService(webhookClient, logger)

	if cfg.GitHub.Username == "" {
		logger.Warn("GITHUB_USERNAME not set, the repository feed will be empty")
	}
	if !webhookClient.Configured() {
		logger.Warn("CONTACT_WEBHOOK_URL not set, contact submissions will be rejected")
	}

	var oauthConfig *oauth2.Config
	if cfg.Discord.ClientID != "" {
		oauthConfig = discord.NewOAuthConfig(cfg.Discord.ClientID, cfg.Discord.RedirectURI)
	} else {
		logger.Warn("DISCORD_CLIENT_ID not set, Discord sign-in is disabled")
	}

	go feedService.RunSweeper(ctx, sweepInterval, cfg.Feed.SessionIdle)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize presentation layer
	router := handlers.NewRouter(handlers.Handlers{
		Health:  handlers.NewHealthHandler(store, cfg.Storage.Driver),
		Auth:    handlers.NewAuthHandler(authService, stores, oauthConfig),
		Feed:    handlers.NewFeedHandler(feedService),
		Profile: handlers.NewProfileHandler(stores),
		Contact: handlers.NewContactHandler(contactService, stores),
		Visitor: middleware.NewVisitorMiddleware(&cfg.Visitor),
	}, cfg.Server.AllowedOrigins)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "addr", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")
	cancel()

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// openStorage connects the configured backend and returns a function releasing it
func openStorage(ctx context.Context, cfg *config.Config) (backend, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client, err := storage.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return storage.NewRedisStorage(client), func() { client.Close() }, nil

	case config.StoragePostgres:
		db, err := database.NewConnection(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return storage.NewPostgresStorage(db), func() { db.Close() }, nil

	default:
		return storage.NewMemoryStorage(), func() {}, nil
	}
}
