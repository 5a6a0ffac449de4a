// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category implements the guide category domain.

Categories are grouping labels for guides. The public API only reads them;
writes happen through the development seed tool. Every listed category
carries a guide_count computed live from the guides referencing it.
*/
package category

import (
	"context"
	"log/slog"
)

// Service implements category use cases.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new category [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns all categories with live guide counts, ordered by name.
func (service *Service) List(context context.Context) ([]Category, error) {
	return service.repo.List(context)
}
