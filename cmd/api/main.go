// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

// Command api is the entry point for the Travelist tour catalogue HTTP API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when configured; otherwise rate limits stay in memory.
//  5. Run database migrations when RUN_MIGRATIONS is set.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/travelist/tourcat/internal/api"
	"github.com/travelist/tourcat/internal/catalog"
	"github.com/travelist/tourcat/internal/listing"
	"github.com/travelist/tourcat/internal/platform/config"
	"github.com/travelist/tourcat/internal/platform/constants"
	"github.com/travelist/tourcat/internal/platform/middleware"
	"github.com/travelist/tourcat/internal/platform/migration"
	pgstore "github.com/travelist/tourcat/internal/platform/postgres"
	redisstore "github.com/travelist/tourcat/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("locale", cfg.Locale),
	)

	// Root context for the process lifetime. Background workers (limiter
	// cleanup) stop when it is cancelled.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	// Statements are only traced to the log in debug mode.
	var tracer *pgstore.Tracer
	if cfg.Debug {
		tracer = pgstore.NewTracer(log)
	}

	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log, tracer)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Rate limiting (Redis or in-memory) ─────────────────────────────
	var limiter middleware.Limiter
	var checkRateLimitStore api.HealthCheck

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		perWindow := max(int(cfg.RateLimitRPS*constants.RateLimitWindow.Seconds()), 1)
		limiter = middleware.NewRedisLimiter(rdb, perWindow, constants.RateLimitWindow)
		checkRateLimitStore = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
		log.Info("rate_limiter_configured", slog.String("store", "redis"), slog.Int("per_window", perWindow))
	} else {
		limiter = middleware.NewMemoryLimiter(rootCtx, cfg.RateLimitRPS, cfg.RateLimitBurst)
		log.Info("rate_limiter_configured", slog.String("store", "memory"))
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	if cfg.RunMigrations {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckRateLimitStore: checkRateLimitStore,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	listingRepository := listing.NewPostgresRepository(pool)
	listingService := listing.NewService(listingRepository, log)
	listingHandler := listing.NewHandler(listingService, catalog.TextsFor(cfg.Locale))

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(cfg, log, limiter, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Listing:   listingHandler,
	})

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", "tourcat"))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
