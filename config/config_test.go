package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

var configEnvVars = []string{
	"LOG_LEVEL",
	"AMADEUS_API_KEY",
	"AMADEUS_API_SECRET",
	"AMADEUS_PRODUCTION",
	"AMADEUS_TIMEOUT_SECONDS",
	"AMADEUS_RATE_LIMIT",
}

// clearConfigEnv unsets every config env var for the test and restores the
// original values afterwards.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		if orig, ok := os.LookupEnv(key); ok {
			key, orig := key, orig
			t.Cleanup(func() { os.Setenv(key, orig) })
			os.Unsetenv(key)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Test default values
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Amadeus.Production)
		assert.Equal(t, 30, cfg.Amadeus.TimeoutSeconds)
		assert.Equal(t, 5, cfg.Amadeus.RateLimit)
		assert.False(t, cfg.Amadeus.HasCredentials())
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("AMADEUS_API_KEY", "test-key")
		t.Setenv("AMADEUS_API_SECRET", "test-secret")
		t.Setenv("AMADEUS_PRODUCTION", "true")
		t.Setenv("AMADEUS_TIMEOUT_SECONDS", "10")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		assert.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Amadeus.Production)
		assert.Equal(t, 10, cfg.Amadeus.TimeoutSeconds)
		assert.Equal(t, "test-key", cfg.Amadeus.APIKey)
		assert.True(t, cfg.Amadeus.HasCredentials())
	})

	t.Run("PartialCredentials", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("AMADEUS_API_KEY", "key-only")

		cfg, err := Load()
		assert.NoError(t, err)
		assert.False(t, cfg.Amadeus.HasCredentials())
	})
}
