package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/quillby/bookstore-api/internal/config"
	"github.com/quillby/bookstore-api/internal/platform/postgres"
	"github.com/quillby/bookstore-api/internal/service/auth"
	"github.com/quillby/bookstore-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	authorStore   store.AuthorStore
	categoryStore store.CategoryStore
	bookStore     store.BookStore
	tokenStore    store.TokenStore

	tokenService   auth.TokenService
	passwordHasher *auth.BcryptHasher
}

// newApplication connects to the database and wires every store and service.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.authorStore = postgres.NewPostgresAuthorStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.bookStore = postgres.NewPostgresBookStore(db, logger)
	app.tokenStore = postgres.NewPostgresTokenStore(db, logger)

	app.tokenService = auth.NewStoreTokenService(app.tokenStore, logger)
	app.passwordHasher = auth.NewBcryptHasher(0)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

// setupDatabase establishes the database connection and configures the
// connection pool.
func setupDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return db, nil
}
