// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/selfhosthub/internal/core/category"
	"github.com/taibuivan/selfhosthub/internal/core/guide"
	"github.com/taibuivan/selfhosthub/internal/seed"
)

// # Fixtures

type categoryRepo struct {
	categories []category.Category
	inserts    int
}

func (r *categoryRepo) List(_ context.Context) ([]category.Category, error) {
	return r.categories, nil
}

func (r *categoryRepo) Count(_ context.Context) (int, error) { return len(r.categories), nil }

func (r *categoryRepo) Insert(_ context.Context, c *category.Category) error {
	r.inserts++
	r.categories = append(r.categories, *c)
	return nil
}

func (r *categoryRepo) InsertMany(ctx context.Context, categories []*category.Category) error {
	for _, c := range categories {
		if err := r.Insert(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

type guideRepo struct {
	guides  []guide.Guide
	inserts int
}

func (r *guideRepo) GetFeatured(_ context.Context) (*guide.Guide, error) { return nil, nil }

func (r *guideRepo) ListLatest(_ context.Context, _ int) ([]guide.Guide, error) {
	return r.guides, nil
}

func (r *guideRepo) Count(_ context.Context) (int, error) { return len(r.guides), nil }

func (r *guideRepo) Insert(_ context.Context, g *guide.Guide) error {
	r.inserts++
	r.guides = append(r.guides, *g)
	return nil
}

func (r *guideRepo) InsertMany(ctx context.Context, guides []*guide.Guide) error {
	for _, g := range guides {
		if err := r.Insert(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

// # Tests

/*
TestCategories_Idempotent verifies that re-running the category seeder against
a populated repository performs zero inserts.
*/
func TestCategories_Idempotent(t *testing.T) {
	repo := &categoryRepo{}
	log := slog.Default()

	require.NoError(t, seed.Categories(context.Background(), repo, log))
	firstRun := repo.inserts
	assert.Equal(t, 3, firstRun)

	require.NoError(t, seed.Categories(context.Background(), repo, log))
	assert.Equal(t, firstRun, repo.inserts, "second run must not insert")
}

/*
TestGuides_Idempotent verifies that re-running the guide seeder against a
populated repository performs zero inserts — including a repository populated
by something other than the seeder itself.
*/
func TestGuides_Idempotent(t *testing.T) {
	t.Run("after_own_run", func(t *testing.T) {
		repo := &guideRepo{}
		log := slog.Default()

		require.NoError(t, seed.Guides(context.Background(), repo, log))
		firstRun := repo.inserts
		assert.Equal(t, 2, firstRun)

		require.NoError(t, seed.Guides(context.Background(), repo, log))
		assert.Equal(t, firstRun, repo.inserts, "second run must not insert")
	})

	t.Run("pre_populated", func(t *testing.T) {
		repo := &guideRepo{guides: []guide.Guide{{ID: "existing"}}}

		require.NoError(t, seed.Guides(context.Background(), repo, slog.Default()))
		assert.Zero(t, repo.inserts)
	})
}

/*
TestGuides_RecordShape verifies the seeded records carry generated IDs,
derived slugs, and the launch content set.
*/
func TestGuides_RecordShape(t *testing.T) {
	repo := &guideRepo{}

	require.NoError(t, seed.Guides(context.Background(), repo, slog.Default()))
	require.Len(t, repo.guides, 2)

	nextcloud := repo.guides[0]
	assert.NotEmpty(t, nextcloud.ID)
	assert.Equal(t, "nextcloud-mit-redis-mysql", nextcloud.Slug)
	assert.True(t, nextcloud.Featured)
	assert.Len(t, nextcloud.Tags, 3)

	fail2ban := repo.guides[1]
	assert.Equal(t, "sicherheit-mit-fail2ban", fail2ban.Slug)
	assert.False(t, fail2ban.Featured)
}

/*
TestCategories_RecordShape verifies slug derivation for the launch categories.
*/
func TestCategories_RecordShape(t *testing.T) {
	repo := &categoryRepo{}

	require.NoError(t, seed.Categories(context.Background(), repo, slog.Default()))
	require.Len(t, repo.categories, 3)

	assert.Equal(t, "cloud-storage", repo.categories[0].Slug)
	assert.Equal(t, "datenbanken", repo.categories[1].Slug)
	assert.Equal(t, "container", repo.categories[2].Slug)
}
