// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package limits_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/selfhosthub/pkg/limits"
)

/*
TestFromRequest verifies parsing and clamping of the limit query parameter.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing_uses_default", "/guides/latest", 2},
		{"explicit_value", "/guides/latest?limit=5", 5},
		{"zero_is_legal", "/guides/latest?limit=0", 0},
		{"negative_uses_default", "/guides/latest?limit=-3", 2},
		{"garbage_uses_default", "/guides/latest?limit=abc", 2},
		{"above_max_is_clamped", "/guides/latest?limit=9000", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, limits.FromRequest(request, 2, 50))
		})
	}
}

/*
TestClamp verifies the boundary behavior of Clamp.
*/
func TestClamp(t *testing.T) {
	assert.Equal(t, 0, limits.Clamp(-1, 10))
	assert.Equal(t, 0, limits.Clamp(0, 10))
	assert.Equal(t, 7, limits.Clamp(7, 10))
	assert.Equal(t, 10, limits.Clamp(11, 10))
}
