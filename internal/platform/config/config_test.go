// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/selfhosthub/internal/platform/config"
)

/*
TestLoad_Defaults verifies the documented fallback values when no environment
variables are set.
*/
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENVIRONMENT", "DEBUG"} {
		// t.Setenv registers restoration of the original value; the variable
		// itself must be absent for the envDefault fallbacks to apply.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestIsDevelopment verifies the environment discriminator used to enable
debug-level logging.
*/
func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		environment   string
		isDevelopment bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			cfg := &config.Config{Environment: tt.environment}
			assert.Equal(t, tt.isDevelopment, cfg.IsDevelopment())
		})
	}
}
