// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package stats computes the catalog statistics aggregate.

It composes three independent reads — total guides, total categories, and
distinct technology tag names — and caches the result in Redis for a short
TTL. The cache is strictly best-effort: a cold, unreachable, or corrupt cache
degrades to direct computation, never to an error.
*/
package stats

import (
	"context"
	"errors"
	"log/slog"
)

// Service implements the statistics use case.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs a new stats [Service].
//
// The cache may be nil, in which case every call computes the aggregate fresh.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Get returns the catalog aggregate, from cache when possible.
func (service *Service) Get(context context.Context) (*Stats, error) {
	if service.cache != nil {
		cached, err := service.cache.Get(context)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			service.logger.Warn("stats_cache_read_failed", slog.Any("error", err))
		}
	}

	stats, err := service.compute(context)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		if err := service.cache.Set(context, *stats); err != nil {
			service.logger.Warn("stats_cache_write_failed", slog.Any("error", err))
		}
	}

	return stats, nil
}

// compute performs the three independent count reads.
func (service *Service) compute(context context.Context) (*Stats, error) {
	guides, err := service.repo.CountGuides(context)
	if err != nil {
		return nil, err
	}

	categories, err := service.repo.CountCategories(context)
	if err != nil {
		return nil, err
	}

	technologies, err := service.repo.CountTechnologies(context)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Guides:       guides,
		Categories:   categories,
		Technologies: technologies,
	}, nil
}
