// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package newsletter implements the newsletter signup list.

Architecture:

  - Service: Validates email input before any store access.
  - Repository: PostgreSQL persistence with a case-insensitive unique index
    on the email column as the uniqueness authority.

Duplicate signups surface as a Conflict (HTTP 400) regardless of interleaving,
because uniqueness is decided by the database constraint at insert time.
*/
package newsletter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/taibuivan/selfhosthub/internal/platform/validate"
)

// MaxEmailLength bounds stored addresses; RFC 5321 caps the path at 254 octets.
const MaxEmailLength = 254

// Service implements newsletter use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new newsletter [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Subscribe registers an email address for newsletter updates.

Description: Validates the address before any store write, then inserts with
a per-record subscription timestamp. Uniqueness is delegated entirely to the
store's unique index.

Parameters:
  - context: context.Context
  - email: The address to register (surrounding whitespace is trimmed)

Returns:
  - *Subscriber: The persisted record
  - error: ValidationError (malformed address), Conflict (duplicate), or
    storage errors
*/
func (service *Service) Subscribe(context context.Context, email string) (*Subscriber, error) {
	email = strings.TrimSpace(email)

	v := &validate.Validator{}
	v.Required("email", email).
		Email("email", email).
		MaxLen("email", email, MaxEmailLength)
	if v.HasErrors() {
		return nil, v.Err()
	}

	subscriber := &Subscriber{
		ID:    newID(),
		Email: email,
	}

	if err := service.repo.Insert(context, subscriber); err != nil {
		return nil, err
	}

	service.logger.Info("newsletter_subscriber_added", slog.String("subscriber_id", subscriber.ID))
	return subscriber, nil
}

// newID generates a time-sortable UUIDv7 primary key.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy failure is an unrecoverable system-level error
		panic("newsletter: failed to generate UUID: " + err.Error())
	}
	return id.String()
}
