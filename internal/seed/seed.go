// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed populates an empty catalog with the launch content set.

Architecture:

  - Idempotency: Each seeder counts existing rows first and skips a
    populated table entirely, so repeated runs perform zero inserts.
  - Repository contract: Seeders depend only on the domain Repository
    interfaces, never on pgx directly.

The catalog has no write endpoints; this package and the migrations are the
only producers of catalog rows.
*/
package seed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taibuivan/selfhosthub/internal/core/category"
	"github.com/taibuivan/selfhosthub/internal/core/guide"
	"github.com/taibuivan/selfhosthub/pkg/pointer"
	"github.com/taibuivan/selfhosthub/pkg/slug"
)

// Categories inserts the launch categories when the table is empty.
func Categories(ctx context.Context, repo category.Repository, log *slog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("categories already present, skipping", slog.Int("count", count))
		return nil
	}

	categories := launchCategories()
	for _, c := range categories {
		c.ID = newID()
		c.Slug = slug.From(c.Name)
	}

	if err := repo.InsertMany(ctx, categories); err != nil {
		return err
	}
	log.Info("categories seeded", slog.Int("count", len(categories)))
	return nil
}

// Guides inserts the launch guides when the table is empty.
func Guides(ctx context.Context, repo guide.Repository, log *slog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("guides already present, skipping", slog.Int("count", count))
		return nil
	}

	guides := launchGuides()
	for _, g := range guides {
		g.ID = newID()
		g.Slug = slug.From(g.Title)
	}

	if err := repo.InsertMany(ctx, guides); err != nil {
		return err
	}
	log.Info("guides seeded", slog.Int("count", len(guides)))
	return nil
}

// launchCategories returns the initial category set.
//
// Each call builds fresh values: seeders mutate the records (ID, slug), and
// shared package state would leak between runs.
func launchCategories() []*category.Category {
	return []*category.Category{
		{
			Name:        "Cloud & Storage",
			Description: "Eigene Cloud-Lösungen und Dateispeicher",
			Icon:        "fas fa-cloud",
			Color:       "blue",
		},
		{
			Name:        "Datenbanken",
			Description: "Datenbank-Setups und Verwaltung",
			Icon:        "fas fa-database",
			Color:       "green",
		},
		{
			Name:        "Container",
			Description: "Docker und Container-Orchestrierung",
			Icon:        "fas fa-boxes",
			Color:       "purple",
		},
	}
}

// launchGuides returns the initial guide set.
func launchGuides() []*guide.Guide {
	return []*guide.Guide{
		{
			Title:       "Nextcloud mit Redis & MySQL",
			Description: "Komplette Anleitung zur Installation von Nextcloud mit Redis-Cache und MySQL-Datenbank für optimale Performance.",
			Content: pointer.To("Diese Anleitung führt durch die Installation von Nextcloud " +
				"mit Redis als Cache und MySQL als Datenbank."),
			Icon:  "fas fa-cloud",
			Color: "blue",
			Tags: []guide.Tag{
				{Name: "Docker", Color: "blue"},
				{Name: "MySQL", Color: "green"},
				{Name: "Redis", Color: "red"},
			},
			Featured: true,
		},
		{
			Title:       "Sicherheit mit Fail2Ban",
			Description: "Schütze deinen Server vor Brute-Force-Angriffen mit Fail2Ban und automatischen IP-Sperren.",
			Content: pointer.To("Fail2Ban überwacht Log-Dateien und sperrt IP-Adressen " +
				"nach wiederholten fehlgeschlagenen Anmeldeversuchen."),
			Icon:  "fas fa-shield-alt",
			Color: "green",
			Tags: []guide.Tag{
				{Name: "Sicherheit", Color: "gray"},
				{Name: "Ubuntu", Color: "yellow"},
			},
		},
	}
}

// newID generates a time-sortable UUIDv7 primary key.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy failure is an unrecoverable system-level error
		panic("seed: failed to generate UUID: " + err.Error())
	}
	return id.String()
}
