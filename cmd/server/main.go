// Package main is the entry point for the HireOrbit API server.
//
// main stays minimal: build the logger, load configuration, create the
// server, run it. Everything else lives in internal packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hireorbit/backend/internal/config"
	"github.com/hireorbit/backend/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	// HIREORBIT_CONFIG points at an optional YAML file; individual values
	// can always be overridden with HIREORBIT_* environment variables.
	cfg, err := config.Load(os.Getenv("HIREORBIT_CONFIG"))
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Ensure the directory for the database file exists (skip for :memory:).
	if cfg.Database.Path != ":memory:" {
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				logger.Error("failed to create database directory",
					slog.String("dir", dir),
					slog.String("error", err.Error()),
				)
				os.Exit(1)
			}
		}
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
