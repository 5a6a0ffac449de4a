// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package guide implements the guide catalog domain.

It covers the two read paths of the public API — the featured guide and the
latest-guides listing — plus the insert operations used by the development
seed tool. Guides carry their technology tags inline.
*/
package guide

import (
	"context"
	"log/slog"

	"github.com/taibuivan/selfhosthub/internal/platform/constants"
	"github.com/taibuivan/selfhosthub/pkg/limits"
)

// Service implements guide catalog use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new guide [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetFeatured returns the guide highlighted on the landing view.
//
// It fails with apperr.NotFound when no guide is flagged featured.
func (service *Service) GetFeatured(context context.Context) (*Guide, error) {
	return service.repo.GetFeatured(context)
}

// ListLatest returns guides ordered by creation time, newest first.
//
// # Limit Semantics
//
// The limit is clamped to [0, MaxLatestLimit]; a zero limit short-circuits to
// an empty slice without touching the store.
func (service *Service) ListLatest(context context.Context, limit int) ([]Guide, error) {
	limit = limits.Clamp(limit, constants.MaxLatestLimit)
	if limit == 0 {
		return []Guide{}, nil
	}

	return service.repo.ListLatest(context, limit)
}
