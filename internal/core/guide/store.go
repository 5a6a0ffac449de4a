// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package guide

import "context"

// Repository is the storage contract for the guide catalog.
type Repository interface {
	// GetFeatured returns the newest guide flagged featured.
	// It returns apperr.NotFound when no guide is flagged.
	GetFeatured(context context.Context) (*Guide, error)

	// ListLatest returns up to limit guides ordered by creation time, newest first.
	ListLatest(context context.Context, limit int) ([]Guide, error)

	// Count returns the total number of guides.
	Count(context context.Context) (int, error)

	// Insert persists a single guide together with its embedded tags.
	Insert(context context.Context, guide *Guide) error

	// InsertMany persists a batch of guides. Each insert is an independent
	// round trip; there is no cross-guide transactional guarantee.
	InsertMany(context context.Context, guides []*Guide) error
}
