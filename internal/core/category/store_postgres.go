// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// PostgreSQL implementation of the category [Repository].
package category

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/selfhosthub/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the category Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List retrieves all categories with their live guide counts.

Description: The count is computed in the same query with a LEFT JOIN so a
category with no guides still appears, with guide_count 0. Ordering is by
name — the store's natural order is not stable and therefore not testable.

Returns:
  - []Category: Display-ready categories
  - error: Database errors
*/
func (repository *PostgresRepository) List(context context.Context) ([]Category, error) {
	const query = `
		SELECT c.id, c.slug, c.name, c.description, c.icon, c.color, COUNT(g.id)
		FROM catalog.category c
		LEFT JOIN catalog.guide g ON g.category_id = c.id
		GROUP BY c.id, c.slug, c.name, c.description, c.icon, c.color
		ORDER BY c.name ASC`

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		category := Category{}
		if err := rows.Scan(
			&category.ID,
			&category.Slug,
			&category.Name,
			&category.Description,
			&category.Icon,
			&category.Color,
			&category.GuideCount,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	// A mid-iteration failure must not surface as a truncated result set.
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	return categories, nil
}

// Count returns the total number of categories.
func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var count int
	err := repository.pool.QueryRow(context, `SELECT COUNT(*) FROM catalog.category`).Scan(&count)
	if err != nil {
		return 0, dberr.Wrap(err, "count_categories")
	}
	return count, nil
}

/*
Insert persists a new category.

Description: The creation timestamp is initialized per-record at insertion
time if not provided.
*/
func (repository *PostgresRepository) Insert(context context.Context, category *Category) error {
	const query = `
		INSERT INTO catalog.category (id, slug, name, description, icon, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now().UTC()
	}
	category.Normalize()

	_, err := repository.pool.Exec(context, query,
		category.ID,
		category.Slug,
		category.Name,
		category.Description,
		category.Icon,
		category.Color,
		category.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_category")
	}

	return nil
}

// InsertMany persists a batch of categories via independent inserts.
func (repository *PostgresRepository) InsertMany(context context.Context, categories []*Category) error {
	for _, category := range categories {
		if err := repository.Insert(context, category); err != nil {
			return err
		}
	}
	return nil
}
