package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Positive(t, cfg.TimeoutMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TOKYOSYNC_ROUTE_ENABLED", "true")
	t.Setenv("TOKYOSYNC_ROUTE_ENDPOINT", "http://example:9999")
	t.Setenv("TOKYOSYNC_ROUTE_MODEL", "qwen2.5")
	t.Setenv("TOKYOSYNC_ROUTE_TIMEOUT_MS", "2500")
	t.Setenv("TOKYOSYNC_ROUTE_MAX_RETRIES", "3")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://example:9999", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("TOKYOSYNC_ROUTE_TIMEOUT_MS", "not-a-number")
	t.Setenv("TOKYOSYNC_ROUTE_MAX_RETRIES", "-2")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}
