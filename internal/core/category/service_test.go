// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/selfhosthub/internal/core/category"
)

// fakeRepository is an in-memory [category.Repository] for service tests.
//
// guideRefs maps category ID → number of guides referencing it, mimicking the
// live count computed by the SQL LEFT JOIN.
type fakeRepository struct {
	categories []category.Category
	guideRefs  map[string]int
}

func (f *fakeRepository) List(_ context.Context) ([]category.Category, error) {
	out := make([]category.Category, len(f.categories))
	copy(out, f.categories)
	for i := range out {
		out[i].GuideCount = f.guideRefs[out[i].ID]
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) { return len(f.categories), nil }

func (f *fakeRepository) Insert(_ context.Context, c *category.Category) error {
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeRepository) InsertMany(ctx context.Context, categories []*category.Category) error {
	for _, c := range categories {
		if err := f.Insert(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

/*
TestService_List_GuideCounts verifies that each category carries its live
guide count, including zero for unreferenced categories.
*/
func TestService_List_GuideCounts(t *testing.T) {
	repo := &fakeRepository{
		categories: []category.Category{
			{ID: "c1", Name: "Container"},
			{ID: "c2", Name: "Datenbanken"},
			{ID: "c3", Name: "Cloud & Storage"},
		},
		guideRefs: map[string]int{"c2": 4},
	}
	service := category.NewService(repo, slog.Default())

	got, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)

	counts := map[string]int{}
	for _, c := range got {
		counts[c.ID] = c.GuideCount
	}
	assert.Equal(t, 0, counts["c1"])
	assert.Equal(t, 4, counts["c2"])
	assert.Equal(t, 0, counts["c3"])
}

/*
TestService_List_StableOrder verifies alphabetical ordering by name.
*/
func TestService_List_StableOrder(t *testing.T) {
	repo := &fakeRepository{
		categories: []category.Category{
			{ID: "c1", Name: "Container"},
			{ID: "c2", Name: "Datenbanken"},
			{ID: "c3", Name: "Cloud & Storage"},
		},
		guideRefs: map[string]int{},
	}
	service := category.NewService(repo, slog.Default())

	got, err := service.List(context.Background())

	require.NoError(t, err)
	names := []string{got[0].Name, got[1].Name, got[2].Name}
	assert.Equal(t, []string{"Cloud & Storage", "Container", "Datenbanken"}, names)
}

/*
TestCategory_Normalize verifies the documented defaulting rules.
*/
func TestCategory_Normalize(t *testing.T) {
	c := &category.Category{Name: "Container"}
	c.Normalize()

	assert.Equal(t, "fas fa-tag", c.Icon)
	assert.Equal(t, "blue", c.Color)
}
