package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ZOMATO_API_KEY", " abc123 ")
	t.Setenv("DEBUG", "true")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.APIKey)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "https://developers.zomato.com/api/v2.1/", cfg.BaseURL)
	assert.Equal(t, "bbolt", cfg.StorageType)
	assert.Equal(t, 30*24*time.Hour, cfg.StorageTTL)
	assert.Equal(t, 12*time.Hour, cfg.StorageCleanupInterval)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("ZOMATO_API_KEY", "")

	_, err := load(viper.New())
	assert.ErrorContains(t, err, "zomato_api_key")
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("ZOMATO_API_KEY", "abc123")
	t.Setenv("STORAGE_TTL_SECONDS", "0")

	_, err := load(viper.New())
	assert.ErrorContains(t, err, "storage_ttl_seconds")
}

func TestRedacted(t *testing.T) {
	cfg := Config{APIKey: "secret", AppName: "zomathon"}
	assert.Equal(t, "***", cfg.Redacted().APIKey)
	assert.Equal(t, "secret", cfg.APIKey)
}
