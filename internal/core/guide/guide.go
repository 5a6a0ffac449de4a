// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package guide

import "time"

// Default presentation values applied when a guide is created without them.
const (
	DefaultIcon  = "fas fa-book"
	DefaultColor = "blue"

	// DefaultTagColor is applied to tags created without an explicit color.
	DefaultTagColor = "blue"
)

// Tag is a labeled technology marker embedded within a guide.
//
// Tags are not independently persisted — they live and die with their guide,
// in insertion order.
type Tag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Guide is a catalog entry describing a self-hosting tutorial.
//
// The category relationship is first-class: CategoryID references a
// [category.Category] and may be nil for uncategorized guides.
type Guide struct {
	ID          string    `json:"id"`
	CategoryID  *string   `json:"category_id,omitempty"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     *string   `json:"content,omitempty"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Tags        []Tag     `json:"tags"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Normalize fills in the documented defaults for icon, color, and tag colors.
//
// It is called before persistence so that stored rows always carry concrete
// presentation values.
func (g *Guide) Normalize() {
	if g.Icon == "" {
		g.Icon = DefaultIcon
	}
	if g.Color == "" {
		g.Color = DefaultColor
	}
	if g.Tags == nil {
		g.Tags = []Tag{}
	}
	for i := range g.Tags {
		if g.Tags[i].Color == "" {
			g.Tags[i].Color = DefaultTagColor
		}
	}
}
