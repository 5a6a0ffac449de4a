// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// PostgreSQL implementation of the newsletter [Repository].
package newsletter

import (
	"context"
	"errors"
	"fmt"
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

// NewPostgresRepository creates a new PostgreSQL implementation of the newsletter Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
Insert persists a new subscriber record.

Description: subscribed_at is assigned per-insert at call time, never from a
shared default. Two concurrent inserts with the same email cannot both
succeed — the unique index on lower(email) rejects the loser, which is
surfaced as a Conflict.

Parameters:
  - context: context.Context
  - subscriber: *Subscriber (ID and Email populated by the service)

Returns:
  - error: apperr.Conflict for duplicates, apperr.Internal when no identifier
    is reported, or other database errors
*/
func (repository *PostgresRepository) Insert(context context.Context, subscriber *Subscriber) error {
	const query = `
		INSERT INTO newsletter.subscriber (id, email, subscribed_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	subscriber.SubscribedAt = time.Now().UTC()

	var insertedID string
	err := repository.pool.QueryRow(context, query,
		subscriber.ID,
		subscriber.Email,
		subscriber.SubscribedAt,
	).Scan(&insertedID)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Email already subscribed")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Internal(fmt.Errorf("insert_subscriber: no identifier returned"))
		}
		return dberr.Wrap(err, "insert_subscriber")
	}

	subscriber.ID = insertedID
	return nil
}
