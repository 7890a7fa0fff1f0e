// Package main implements the entry point for the bookstore API server,
// which serves the book catalog and its user registration/login flows.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/quillby/bookstore-api/internal/config"
	"github.com/quillby/bookstore-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a migration command (up, down, status) instead of serving",
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		err := runMigrations(app.db, *migrateCmd)
		app.cleanup()
		if err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		return
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
