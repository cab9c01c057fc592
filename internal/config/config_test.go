package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvVars(t *testing.T) {
	t.Helper()

	// Clear all config-related env vars to ensure clean test state
	envVars := []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"CATALOG_PATH", "CATALOG_CACHE_SIZE",
		"SIM_WORKERS", "SIM_QUEUE_SIZE", "SIM_SEED", "SIM_MAX_EPISODES",
		"MAX_BODY_BYTES", "SHUTDOWN_TIMEOUT",
	}

	for _, key := range envVars {
		// t.Setenv registers the restore; Unsetenv then clears it for the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "poe-craftsim", cfg.ServiceName)
		assert.Equal(t, ConfigPathModCatalog, cfg.CatalogPath)
		assert.Equal(t, DefaultCatalogCacheSize, cfg.CatalogCacheSize)
		assert.Equal(t, DefaultSimWorkers, cfg.SimWorkers)
		assert.Equal(t, DefaultSimQueueSize, cfg.SimQueueSize)
		assert.Equal(t, uint64(DefaultSimSeed), cfg.SimSeed)
		assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)
		assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
		assert.Equal(t, ":8080", cfg.Addr())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		// Set custom values
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("VERSION", "1.2.3")
		t.Setenv("CATALOG_PATH", "/data/mods.json")
		t.Setenv("CATALOG_CACHE_SIZE", "128")
		t.Setenv("SIM_WORKERS", "16")
		t.Setenv("SIM_QUEUE_SIZE", "1024")
		t.Setenv("SIM_SEED", "18446744073709551615")
		t.Setenv("SHUTDOWN_TIMEOUT", "30s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "1.2.3", cfg.Version)
		assert.Equal(t, "/data/mods.json", cfg.CatalogPath)
		assert.Equal(t, 128, cfg.CatalogCacheSize)
		assert.Equal(t, 16, cfg.SimWorkers)
		assert.Equal(t, 1024, cfg.SimQueueSize)
		assert.Equal(t, uint64(18446744073709551615), cfg.SimSeed)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("fails on invalid port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "eighty")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT value")
	})

	t.Run("fails on empty catalog path", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("CATALOG_PATH", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CATALOG_PATH")
	})

	t.Run("fails on non-positive worker count", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SIM_WORKERS", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SIM_WORKERS")
	})
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42), "Should return default for invalid integer")
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		assert.Equal(t, -10, getEnvAsInt("TEST_INT_VAR", 42))
	})
}

func TestGetEnvAsUint64(t *testing.T) {
	t.Setenv("TEST_UINT_VAR", "-1")
	assert.Equal(t, uint64(7), getEnvAsUint64("TEST_UINT_VAR", 7), "negative seeds fall back")

	t.Setenv("TEST_UINT_VAR", "99")
	assert.Equal(t, uint64(99), getEnvAsUint64("TEST_UINT_VAR", 7))
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
	}{
		{"10s", 10 * time.Second},
		{"1m30s", 90 * time.Second},
		{"invalid", 5 * time.Minute},
		{"-5s", 5 * time.Minute},
		{"", 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.expected, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}
