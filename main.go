// Bloglist API server: wires configuration, the database pool, the
// feature services and the HTTP router, then serves until interrupted.
//
// @title Bloglist API
// @version 1.0
// @description Blogging backend with token-based authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
	"github.com/user/bloglist-go/blogs"
	"github.com/user/bloglist-go/config"
	"github.com/user/bloglist-go/db"
	_ "github.com/user/bloglist-go/docs" // swagger spec registration
	"github.com/user/bloglist-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.Database)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	defer pool.Close()

	migrationsPath := os.Getenv("MIGRATIONS_DIR")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(cfg.Database, migrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userStore := users.NewPostgresStore(pool)
	blogStore := blogs.NewPostgresStore(pool)

	tokens := auth.NewTokenService(cfg.Auth)
	authMiddleware := auth.NewMiddleware(tokens, userStore)
	authHandlers := auth.NewHandlers(auth.NewService(userStore, tokens))
	userHandlers := users.NewHandlers(users.NewService(userStore, tokens))
	blogHandlers := blogs.NewHandlers(blogs.NewService(blogStore))

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panics become a 500 with the standard error body instead of an
	// empty reply.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/login", func(r chi.Router) {
		r.Post("/", authHandlers.HandleLogin())
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandlers.HandleCreate())
		r.Get("/", userHandlers.HandleList())

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireUser)
			r.Get("/info", userHandlers.HandleInfo())
		})
	})

	r.Route("/api/blogs", func(r chi.Router) {
		blogHandlers.RegisterRoutes(r, authMiddleware.RequireUser)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	log.Println("server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
