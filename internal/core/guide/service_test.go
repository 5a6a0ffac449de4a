// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package guide_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/selfhosthub/internal/core/guide"
	"github.com/taibuivan/selfhosthub/internal/platform/apperr"
)

// fakeRepository is an in-memory [guide.Repository] for service tests.
type fakeRepository struct {
	guides       []guide.Guide
	requestedCap int
}

func (f *fakeRepository) GetFeatured(_ context.Context) (*guide.Guide, error) {
	var newest *guide.Guide
	for i := range f.guides {
		g := &f.guides[i]
		if !g.Featured {
			continue
		}
		if newest == nil || g.CreatedAt.After(newest.CreatedAt) {
			newest = g
		}
	}
	if newest == nil {
		return nil, apperr.NotFound("Featured guide")
	}
	return newest, nil
}

func (f *fakeRepository) ListLatest(_ context.Context, limit int) ([]guide.Guide, error) {
	f.requestedCap = limit
	if limit > len(f.guides) {
		limit = len(f.guides)
	}
	// Fixture guides are stored newest-first already.
	return f.guides[:limit], nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) { return len(f.guides), nil }

func (f *fakeRepository) Insert(_ context.Context, g *guide.Guide) error {
	f.guides = append(f.guides, *g)
	return nil
}

func (f *fakeRepository) InsertMany(ctx context.Context, guides []*guide.Guide) error {
	for _, g := range guides {
		if err := f.Insert(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func testLogger() *slog.Logger { return slog.Default() }

func fixtureGuides() []guide.Guide {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	guides := make([]guide.Guide, 5)
	for i := range guides {
		guides[i] = guide.Guide{
			ID:        string(rune('a' + i)),
			Title:     "Guide",
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return guides
}

/*
TestService_GetFeatured_NotFound verifies the 404 path when nothing is flagged.
*/
func TestService_GetFeatured_NotFound(t *testing.T) {
	repo := &fakeRepository{guides: fixtureGuides()}
	service := guide.NewService(repo, testLogger())

	_, err := service.GetFeatured(context.Background())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

/*
TestService_GetFeatured_ReturnsFlaggedGuide verifies the happy path.
*/
func TestService_GetFeatured_ReturnsFlaggedGuide(t *testing.T) {
	guides := fixtureGuides()
	guides[2].Featured = true
	repo := &fakeRepository{guides: guides}
	service := guide.NewService(repo, testLogger())

	got, err := service.GetFeatured(context.Background())

	require.NoError(t, err)
	assert.True(t, got.Featured)
	assert.Equal(t, guides[2].ID, got.ID)
}

/*
TestService_ListLatest_LimitSemantics verifies clamping and the zero short-circuit.
*/
func TestService_ListLatest_LimitSemantics(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantCount int
		wantStore int // limit the store should receive; -1 = store not called
	}{
		{"default_limit", 2, 2, 2},
		{"zero_returns_empty_without_store_call", 0, 0, -1},
		{"negative_clamped_to_zero", -4, 0, -1},
		{"above_max_clamped", 500, 5, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{guides: fixtureGuides(), requestedCap: -1}
			service := guide.NewService(repo, testLogger())

			got, err := service.ListLatest(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)
			assert.Equal(t, tt.wantStore, repo.requestedCap)
		})
	}
}

/*
TestService_ListLatest_NewestFirst verifies descending created_at ordering.
*/
func TestService_ListLatest_NewestFirst(t *testing.T) {
	repo := &fakeRepository{guides: fixtureGuides()}
	service := guide.NewService(repo, testLogger())

	got, err := service.ListLatest(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, !got[i].CreatedAt.After(got[i-1].CreatedAt))
	}
}

/*
TestGuide_Normalize verifies the documented defaulting rules.
*/
func TestGuide_Normalize(t *testing.T) {
	g := &guide.Guide{
		Title: "Nextcloud",
		Tags:  []guide.Tag{{Name: "Docker"}, {Name: "MySQL", Color: "green"}},
	}

	g.Normalize()

	assert.Equal(t, "fas fa-book", g.Icon)
	assert.Equal(t, "blue", g.Color)
	assert.Equal(t, "blue", g.Tags[0].Color)
	assert.Equal(t, "green", g.Tags[1].Color)
}
