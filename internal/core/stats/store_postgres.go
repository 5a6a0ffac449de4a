// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// PostgreSQL implementation of the stats [Repository].
package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/selfhosthub/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the stats Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// CountGuides returns the total number of guides.
func (repository *PostgresRepository) CountGuides(context context.Context) (int, error) {
	return repository.scalar(context, `SELECT COUNT(*) FROM catalog.guide`, "count_guides")
}

// CountCategories returns the total number of categories.
func (repository *PostgresRepository) CountCategories(context context.Context) (int, error) {
	return repository.scalar(context, `SELECT COUNT(*) FROM catalog.category`, "count_categories")
}

/*
CountTechnologies returns the number of distinct tag names across all guides.

Description: Tags live in catalog.guide_tag, one row per (guide, position), so
the flatten-then-group aggregation collapses to a COUNT(DISTINCT name). A tag
name shared by several guides counts once; no tags at all yields 0.
*/
func (repository *PostgresRepository) CountTechnologies(context context.Context) (int, error) {
	return repository.scalar(context, `SELECT COUNT(DISTINCT name) FROM catalog.guide_tag`, "count_technologies")
}

// scalar runs a single-value COUNT query.
func (repository *PostgresRepository) scalar(context context.Context, query, action string) (int, error) {
	var count int
	if err := repository.pool.QueryRow(context, query).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, action)
	}
	return count, nil
}
