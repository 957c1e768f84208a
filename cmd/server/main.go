// Package main implements the entry point for the CampusQA API server,
// a question and answer forum for university students with topic-scoped
// questions, answers, and answer voting.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/campusqa/campusqa-api/internal/config"
	"github.com/campusqa/campusqa-api/internal/platform/logger"
	"github.com/campusqa/campusqa-api/internal/platform/postgres"
)

func main() {
	// Load a local .env file if present. Missing files are fine; real
	// deployments set environment variables directly.
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires the application together, and serves HTTP
// until a shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}

	if err := postgres.MigrateUp(context.Background(), db); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	app, err := newApplication(cfg, db, appLogger)
	if err != nil {
		return err
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
