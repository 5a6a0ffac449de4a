// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

// Repository is the storage contract for guide categories.
type Repository interface {
	// List returns all categories with their live guide counts,
	// ordered by name for stable output.
	List(context context.Context) ([]Category, error)

	// Count returns the total number of categories.
	Count(context context.Context) (int, error)

	// Insert persists a single category.
	Insert(context context.Context, category *Category) error

	// InsertMany persists a batch of categories via independent inserts.
	InsertMany(context context.Context, categories []*Category) error
}
