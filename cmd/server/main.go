// Golazo - World Cup Tournament Data API
// Copyright 2026 Dani Castano (dcastano)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dcastano/golazo

// Package main is the entry point for the Golazo API server.
//
// Golazo serves a read-only REST API over a World Cup tournament dataset
// stored in DuckDB. The dataset file is produced by an external loading
// pipeline; the server opens it with access_mode=read_only and never mutates
// it.
//
// # Configuration
//
// Configuration is loaded via koanf v2 with layered sources (highest priority
// wins): environment variables, an optional config.yaml, then built-in
// defaults. Common settings:
//
//	export DUCKDB_PATH=/data/worldcup.duckdb
//	export HTTP_PORT=8080
//	export LOG_LEVEL=info
//	./golazo
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops accepting
// new connections, waits up to 10 seconds for in-flight requests, then closes
// the database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dcastano/golazo/internal/api"
	"github.com/dcastano/golazo/internal/config"
	"github.com/dcastano/golazo/internal/database"
	"github.com/dcastano/golazo/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config is not available yet.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("dataset", cfg.Database.Path).
		Msg("Starting Golazo API server")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(db, cfg),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logging.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	} else {
		logging.Info().Msg("Server stopped")
	}
}
