// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import "context"

// Repository is the read contract for the three independent catalog counts.
type Repository interface {
	// CountGuides returns the total number of guides.
	CountGuides(context context.Context) (int, error)

	// CountCategories returns the total number of categories.
	CountCategories(context context.Context) (int, error)

	// CountTechnologies returns the number of distinct tag names across all
	// guides (0 when no guide has tags).
	CountTechnologies(context context.Context) (int, error)
}

// Cache stores a computed [Stats] aggregate for a short TTL.
//
// Implementations signal a miss with an error; callers treat any cache error
// as a miss and fall back to the repository.
type Cache interface {
	Get(context context.Context) (*Stats, error)
	Set(context context.Context, stats Stats) error
}
