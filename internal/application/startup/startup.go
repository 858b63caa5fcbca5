// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageforge/pageforge-go/internal/application/container"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/manager"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/persistence/database"
	"github.com/pageforge/pageforge-go/internal/presentation/http/server"
	"github.com/pageforge/pageforge-go/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("\033[32m" + `
  ▄▄▄▄   ▄▄▄   ▄▄▄▄  ▄▄▄▄▄ ▄▄▄▄▄ ▄▄▄▄▄  ▄▄▄▄  ▄▄▄▄▄
  █   █ █   █ █      █     █     █   █ █    █ █
  █▄▄▄▀ █▄▄▄█ █  ▄▄█ █▄▄▄  █▄▄▄  █▄▄▄▀ █    █ █▄▄▄
  █     █   █ █    █ █     █     █  █  █    █ █
  █     █   █ ▀▄▄▄▄▀ █▄▄▄▄ █     █   █ ▀▄▄▄▄▀ █▄▄▄▄
` + "\033[97m" + `
  programmatic HTML page builder
` + "\033[0m")

	// Step 1: Channeled logger
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.LogDirectory = config.LogDirectory
	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.LogStartupPhase("logging", time.Since(start), true, nil)

	// Step 2: Database connection and schema
	dbStart := time.Now()
	db, err := database.NewConnectionFromConfig(logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	tableCreator := database.NewTableCreator()
	if err := tableCreator.CreateSchema(db.DB); err != nil {
		db.Close()
		return fmt.Errorf("failed to create database schema: %w", err)
	}
	logger.LogStartupPhase("database", time.Since(dbStart), true, map[string]any{
		"libsql": config.LibSQLEnabled,
	})

	// Step 3: Cache system
	cacheStart := time.Now()
	cacheManager := manager.NewManager(config.RenderCacheTTL, config.CacheCleanupInterval, logger)
	logger.LogStartupPhase("cache", time.Since(cacheStart), true, map[string]any{
		"renderTTL":       config.RenderCacheTTL.String(),
		"cleanupInterval": config.CacheCleanupInterval.String(),
	})

	// Step 4: Dependency injection container
	containerStart := time.Now()
	appContainer := container.NewContainer(db.DB, cacheManager, logger)
	go appContainer.Broadcaster.Run()
	logger.LogStartupPhase("container", time.Since(containerStart), true, nil)

	// Step 5: HTTP server
	serverStart := time.Now()
	httpServer := server.New(config.Port, appContainer)
	logger.LogStartupPhase("server", time.Since(serverStart), true, map[string]any{
		"port": config.Port,
	})

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+config.Port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", config.Port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Closing container resources...")
	appContainer.Close()

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return logger.Close()
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
