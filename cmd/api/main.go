// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Backlist HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
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

	"github.com/taibuivan/backlist/internal/api"
	"github.com/taibuivan/backlist/internal/auth"
	"github.com/taibuivan/backlist/internal/core/affiliate"
	"github.com/taibuivan/backlist/internal/core/book"
	"github.com/taibuivan/backlist/internal/core/catalog"
	"github.com/taibuivan/backlist/internal/core/curator"
	"github.com/taibuivan/backlist/internal/core/tag"
	"github.com/taibuivan/backlist/internal/platform/config"
	"github.com/taibuivan/backlist/internal/platform/constants"
	"github.com/taibuivan/backlist/internal/platform/migration"
	pgstore "github.com/taibuivan/backlist/internal/platform/postgres"
	redisstore "github.com/taibuivan/backlist/internal/platform/redis"
	"github.com/taibuivan/backlist/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", "backlist"))
	slog.SetDefault(log)

	log.Info("[Backlist] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "backlist"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. A 30s deadline surfaces misconfiguration quickly.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives as long as the process; stops background sweepers on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Auth Service ───────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize session tokens")

	authService, err := auth.NewService(tokens, cfg.AdminPassword, auth.NewRedisRevocationStore(rdb), log)
	must(log, err, "initialize auth service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers([]api.HealthCheck{
		{Name: "postgres", Check: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }},
		{Name: "redis", Check: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	// Every admin mutation drops the public catalog cache.
	catalogCache := catalog.NewRedisCache(rdb, cfg.CatalogCacheTTL)
	catalogService := catalog.NewService(catalog.NewPostgresRepository(pool), catalogCache, log)

	bookRepository := book.NewPostgresRepository(pool)
	bookService := book.NewService(bookRepository, bookRepository, catalogCache, log)
	tagService := tag.NewService(tag.NewPostgresRepository(pool), catalogCache, log)
	curatorService := curator.NewService(curator.NewPostgresRepository(pool), catalogCache, log)
	affiliateService := affiliate.NewService(affiliate.NewPostgresRepository(pool), catalogCache, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService, cfg.IsProduction()),
		Catalog:    catalog.NewHandler(catalogService),
		Books:      book.NewHandler(bookService),
		Tags:       tag.NewHandler(tagService),
		Curators:   curator.NewHandler(curatorService),
		Affiliates: affiliate.NewHandler(affiliateService),
	}

	server := api.NewServer(appCtx, cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
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
