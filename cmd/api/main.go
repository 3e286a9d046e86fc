package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cardUseCase "pocket-wallet/internal/domain/usecase/card"
	ledgerUseCase "pocket-wallet/internal/domain/usecase/ledger"
	sessionUseCase "pocket-wallet/internal/domain/usecase/session"

	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/domain/port/persistence"
	"pocket-wallet/internal/infrastructure/adapter/api/handler"
	"pocket-wallet/internal/infrastructure/adapter/api/routes"
	"pocket-wallet/internal/infrastructure/adapter/logger"
	"pocket-wallet/internal/infrastructure/adapter/notifier"
	"pocket-wallet/internal/infrastructure/adapter/storage"
	timeProvider "pocket-wallet/internal/infrastructure/adapter/time"
	"pocket-wallet/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Logger.Level, cfg.Environment == config.Production)
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Open the device-local key-value store
	kv := openStore(cfg, appLogger)
	defer func() {
		if err := kv.Close(); err != nil {
			appLogger.Warn("Failed to close storage", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Notifications fan out to the log and to the in-memory feed the API serves
	feed := notifier.NewFeed(cfg.Notifications.FeedCapacity)
	notify := notifier.NewFanout(notifier.NewLogNotifier(appLogger), feed)

	// Initialize use cases
	latency := coreport.Duration(cfg.Simulation.LatencyMs) * coreport.Millisecond
	sessions := sessionUseCase.NewStore(kv, tp, appLogger, notify, latency)
	cards := cardUseCase.NewCollection(kv, tp, appLogger, notify)
	payments := ledgerUseCase.NewLedger(cards, tp, appLogger, notify)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(sessions, appLogger)
	cardHandler := handler.NewCardHandler(cards, payments, appLogger)
	walletHandler := handler.NewWalletHandler(payments, appLogger)
	notificationHandler := handler.NewNotificationHandler(feed)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, authHandler, cardHandler, walletHandler, notificationHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// openStore opens the configured persistence adapter. A sqlite store that
// cannot be opened degrades to the in-memory store so the app still serves;
// state then lives only for the process lifetime.
func openStore(cfg *config.Config, appLogger coreport.Logger) persistence.KeyValueStore {
	if cfg.Storage.Driver == "memory" {
		appLogger.Info("Using in-memory storage", nil)
		return storage.NewMemoryStore()
	}

	kv, err := storage.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		appLogger.Warn("Could not open sqlite storage, falling back to memory", map[string]any{
			"path":  cfg.Storage.Path,
			"error": err.Error(),
		})
		return storage.NewMemoryStore()
	}

	appLogger.Info("Opened sqlite storage", map[string]any{
		"path": cfg.Storage.Path,
	})
	return kv
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Storage.Driver != "sqlite" && cfg.Storage.Driver != "memory" {
		return fmt.Errorf("invalid storage.driver value: %s, must be sqlite or memory", cfg.Storage.Driver)
	}

	if cfg.Storage.Driver == "sqlite" && cfg.Storage.Path == "" {
		missingConfigs = append(missingConfigs, "storage.path")
	}

	if cfg.Simulation.LatencyMs < 0 {
		return fmt.Errorf("invalid simulation.latencyMs value: %d, must not be negative", cfg.Simulation.LatencyMs)
	}

	if cfg.Notifications.FeedCapacity <= 0 {
		missingConfigs = append(missingConfigs, "notifications.feedCapacity")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
