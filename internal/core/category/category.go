// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "time"

// Default presentation values applied when a category is created without them.
const (
	DefaultIcon  = "fas fa-tag"
	DefaultColor = "blue"
)

// Category is a grouping label for guides.
//
// GuideCount is derived at read time from the guides referencing this
// category; it is never stored.
type Category struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	GuideCount  int       `json:"guide_count"`
	CreatedAt   time.Time `json:"-"`
}

// Normalize fills in the documented defaults for icon and color.
func (c *Category) Normalize() {
	if c.Icon == "" {
		c.Icon = DefaultIcon
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
}
