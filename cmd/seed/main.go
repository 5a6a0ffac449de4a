// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed populates an empty catalog with the launch content set.
//
// It is idempotent: guides and categories are only inserted when their
// tables are empty, so re-running against a populated database is a no-op.
// Intended for local development and first deployment, not for production
// content management.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/selfhosthub/internal/core/category"
	"github.com/taibuivan/selfhosthub/internal/core/guide"
	"github.com/taibuivan/selfhosthub/internal/platform/config"
	"github.com/taibuivan/selfhosthub/internal/platform/constants"
	"github.com/taibuivan/selfhosthub/internal/platform/migration"
	pgstore "github.com/taibuivan/selfhosthub/internal/platform/postgres"
	"github.com/taibuivan/selfhosthub/internal/seed"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).
		With(slog.String("app", constants.AppName), slog.String("cmd", "seed"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	// Schema first. Safe to repeat; applied migrations are skipped.
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	must(log, seed.Categories(ctx, category.NewPostgresRepository(pool), log), "seed categories")
	must(log, seed.Guides(ctx, guide.NewPostgresRepository(pool), log), "seed guides")

	log.Info("seed complete")
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure", slog.String("context", context), slog.Any("error", err))
		os.Exit(1)
	}
}
