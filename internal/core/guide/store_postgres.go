// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// PostgreSQL implementation of the guide [Repository].
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
// [apperr.AppError] types to avoid leaking storage implementation details.
package guide

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/selfhosthub/internal/platform/apperr"
	"github.com/taibuivan/selfhosthub/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the guide Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const guideColumns = `id, category_id, slug, title, description, content, icon, color, featured, created_at, updated_at`

/*
GetFeatured retrieves the guide highlighted on the landing view.

Description: Featured uniqueness is not enforced at the data layer, so the
newest featured guide is returned to keep the result deterministic.

Returns:
  - *Guide: Hydrated guide with its tags
  - error: apperr.NotFound when no guide is flagged, or database errors
*/
func (repository *PostgresRepository) GetFeatured(context context.Context) (*Guide, error) {
	const query = `
		SELECT ` + guideColumns + `
		FROM catalog.guide
		WHERE featured = TRUE
		ORDER BY created_at DESC
		LIMIT 1`

	guide := &Guide{}
	err := repository.pool.QueryRow(context, query).Scan(
		&guide.ID,
		&guide.CategoryID,
		&guide.Slug,
		&guide.Title,
		&guide.Description,
		&guide.Content,
		&guide.Icon,
		&guide.Color,
		&guide.Featured,
		&guide.CreatedAt,
		&guide.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Featured guide")
		}
		return nil, dberr.Wrap(err, "get_featured_guide")
	}

	if err := repository.loadTags(context, []*Guide{guide}); err != nil {
		return nil, err
	}

	return guide, nil
}

/*
ListLatest retrieves guides ordered by creation time, newest first.

Parameters:
  - context: context.Context
  - limit: Maximum number of guides to return (already clamped by the service)

Returns:
  - []Guide: Hydrated guides with their tags (empty slice when limit is 0)
  - error: Database errors
*/
func (repository *PostgresRepository) ListLatest(context context.Context, limit int) ([]Guide, error) {
	const query = `
		SELECT ` + guideColumns + `
		FROM catalog.guide
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_latest_guides")
	}
	defer rows.Close()

	guides := make([]Guide, 0, limit)
	for rows.Next() {
		guide := Guide{}
		if err := rows.Scan(
			&guide.ID,
			&guide.CategoryID,
			&guide.Slug,
			&guide.Title,
			&guide.Description,
			&guide.Content,
			&guide.Icon,
			&guide.Color,
			&guide.Featured,
			&guide.CreatedAt,
			&guide.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_guide")
		}
		guides = append(guides, guide)
	}
	rows.Close()

	// A mid-iteration failure must not surface as a truncated result set.
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_latest_guides")
	}

	refs := make([]*Guide, len(guides))
	for i := range guides {
		refs[i] = &guides[i]
	}
	if err := repository.loadTags(context, refs); err != nil {
		return nil, err
	}

	return guides, nil
}

// Count returns the total number of guides in the catalog.
func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	var count int
	err := repository.pool.QueryRow(context, `SELECT COUNT(*) FROM catalog.guide`).Scan(&count)
	if err != nil {
		return 0, dberr.Wrap(err, "count_guides")
	}
	return count, nil
}

/*
Insert persists a new guide and its embedded tags.

Description: Timestamps are initialized per-record at insertion time if not
provided. Tags are written in their slice order so that ordering survives
round trips.
*/
func (repository *PostgresRepository) Insert(context context.Context, guide *Guide) error {
	const query = `
		INSERT INTO catalog.guide (
			id, category_id, slug, title, description, content, icon, color, featured, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now().UTC()
	if guide.CreatedAt.IsZero() {
		guide.CreatedAt = now
	}
	guide.UpdatedAt = now
	guide.Normalize()

	_, err := repository.pool.Exec(context, query,
		guide.ID,
		guide.CategoryID,
		guide.Slug,
		guide.Title,
		guide.Description,
		guide.Content,
		guide.Icon,
		guide.Color,
		guide.Featured,
		guide.CreatedAt,
		guide.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_guide")
	}

	const tagQuery = `
		INSERT INTO catalog.guide_tag (guide_id, position, name, color)
		VALUES ($1, $2, $3, $4)`

	for position, tag := range guide.Tags {
		if _, err := repository.pool.Exec(context, tagQuery, guide.ID, position, tag.Name, tag.Color); err != nil {
			return dberr.Wrap(err, "insert_guide_tag")
		}
	}

	return nil
}

// InsertMany persists a batch of guides via independent inserts.
func (repository *PostgresRepository) InsertMany(context context.Context, guides []*Guide) error {
	for _, guide := range guides {
		if err := repository.Insert(context, guide); err != nil {
			return err
		}
	}
	return nil
}

// loadTags hydrates the Tags slice for every provided guide in one query.
func (repository *PostgresRepository) loadTags(context context.Context, guides []*Guide) error {
	if len(guides) == 0 {
		return nil
	}

	ids := make([]string, 0, len(guides))
	byID := make(map[string]*Guide, len(guides))
	for _, guide := range guides {
		guide.Tags = []Tag{}
		ids = append(ids, guide.ID)
		byID[guide.ID] = guide
	}

	const query = `
		SELECT guide_id, name, color
		FROM catalog.guide_tag
		WHERE guide_id = ANY($1)
		ORDER BY guide_id, position`

	rows, err := repository.pool.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "load_guide_tags")
	}
	defer rows.Close()

	for rows.Next() {
		var guideID string
		tag := Tag{}
		if err := rows.Scan(&guideID, &tag.Name, &tag.Color); err != nil {
			return dberr.Wrap(err, "scan_guide_tag")
		}
		if guide, ok := byID[guideID]; ok {
			guide.Tags = append(guide.Tags, tag)
		}
	}

	if err := rows.Err(); err != nil {
		return dberr.Wrap(err, "load_guide_tags")
	}

	return nil
}
