package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/quillby/bookstore-api/internal/api"
	apiMiddleware "github.com/quillby/bookstore-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.tokenService,
		app.passwordHasher,
		app.passwordHasher,
		app.logger,
	)
	authorHandler := api.NewAuthorHandler(app.authorStore, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.logger)
	bookHandler := api.NewBookHandler(
		app.bookStore,
		app.authorStore,
		app.categoryStore,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Author endpoints (public)
		r.Get("/authors", authorHandler.List)
		r.Post("/authors", authorHandler.Create)
		r.Get("/authors/{id}", authorHandler.Get)
		r.Put("/authors/{id}", authorHandler.Update)
		r.Delete("/authors/{id}", authorHandler.Delete)

		// Category endpoints (public)
		r.Get("/categories", categoryHandler.List)
		r.Post("/categories", categoryHandler.Create)
		r.Get("/categories/{id}", categoryHandler.Get)
		r.Put("/categories/{id}", categoryHandler.Update)
		r.Delete("/categories/{id}", categoryHandler.Delete)

		// Aggregate catalog view for the listing page (public)
		r.Get("/books/list", bookHandler.Catalog)

		// Book endpoints all require an authenticated caller
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/books", bookHandler.List)
			r.Post("/books", bookHandler.Create)
			r.Get("/books/{id}", bookHandler.Get)
			r.Put("/books/{id}", bookHandler.Update)
			r.Delete("/books/{id}", bookHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
