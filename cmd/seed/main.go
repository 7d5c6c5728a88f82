// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed imports a YAML catalog file through the admin services.
//
// Usage:
//
//	seed -file catalog.yaml
//
// It reads the same environment as the API server, runs pending migrations
// and drops the public catalog cache once the import is done.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/backlist/internal/core/affiliate"
	"github.com/taibuivan/backlist/internal/core/book"
	"github.com/taibuivan/backlist/internal/core/catalog"
	"github.com/taibuivan/backlist/internal/core/curator"
	"github.com/taibuivan/backlist/internal/core/tag"
	"github.com/taibuivan/backlist/internal/platform/config"
	"github.com/taibuivan/backlist/internal/platform/migration"
	pgstore "github.com/taibuivan/backlist/internal/platform/postgres"
	redisstore "github.com/taibuivan/backlist/internal/platform/redis"
	"github.com/taibuivan/backlist/internal/seed"
)

func main() {
	file := flag.String("file", "catalog.yaml", "path to the seed catalog")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "backlist-seed"))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	document, err := seed.Load(*file)
	must(log, err, "read seed file")

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer rdb.Close()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// The cache is dropped once at the end instead of after every record.
	bookRepository := book.NewPostgresRepository(pool)
	books := book.NewService(bookRepository, bookRepository, nil, log)

	importer := seed.NewImporter(seed.Services{
		Tags:       tag.NewService(tag.NewPostgresRepository(pool), nil, log),
		Curators:   curator.NewService(curator.NewPostgresRepository(pool), nil, log),
		Affiliates: affiliate.NewService(affiliate.NewPostgresRepository(pool), nil, log),
		Books:      books,
		Links:      books,
	}, log)

	_, err = importer.Import(ctx, document)
	must(log, err, "import catalog")

	if err := catalog.NewRedisCache(rdb, cfg.CatalogCacheTTL).Invalidate(ctx); err != nil {
		log.Warn("cache_invalidation_failed", slog.Any("error", err))
	}
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure", slog.String("context", context), slog.Any("error", err))
		os.Exit(1)
	}
}
