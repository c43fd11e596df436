// Package server wires the dependency graph and owns the HTTP listener:
// config and logger come in, and the router, services, and repositories are
// assembled here in one place.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hireorbit/backend/internal/auth"
	"github.com/hireorbit/backend/internal/config"
	"github.com/hireorbit/backend/internal/handler"
	"github.com/hireorbit/backend/internal/middleware"
	sqliteRepo "github.com/hireorbit/backend/internal/repository/sqlite"
	"github.com/hireorbit/backend/internal/service"
)

// Server owns the router and the database connection; the connection is
// closed during graceful shutdown.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New assembles the full dependency chain:
// sqlite.DB → services → handlers → routes.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures middleware and all route handlers.
//
// GET  /         → liveness message
// POST /register → create account
// POST /login    → issue bearer token
// GET  /me       → current account          (auth)
// GET  /jobs     → list caller's jobs       (auth)
// POST /jobs     → create job for caller    (auth)
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.CORS(s.config.Server.Origin))

	tokens, err := auth.NewTokenService(s.config.Auth.Secret, s.config.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService(s.config.Auth.BcryptCost)

	authService := service.NewAuthService(s.db, tokens, passwords, s.logger)
	jobService := service.NewJobService(s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	jobHandler := handler.NewJobHandler(jobService, s.logger)

	s.router.Get("/", authHandler.HandleRoot)
	s.router.Post("/register", authHandler.HandleRegister)
	s.router.Post("/login", authHandler.HandleLogin)

	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens, s.db, s.logger))

		r.Get("/me", authHandler.HandleMe)
		r.Get("/jobs", jobHandler.HandleList)
		r.Post("/jobs", jobHandler.HandleCreate)
	})

	return nil
}

// Handler exposes the router; used by tests to drive the full stack without
// binding a port.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database connection. Start does this itself; Close is
// for callers that never reach Start (tests).
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, drain in-flight requests for up
// to 30 seconds, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Server.Port),
			slog.String("database", s.config.Database.Path),
			slog.String("origin", s.config.Server.Origin),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
