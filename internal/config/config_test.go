package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 0.0001, cfg.Optimization.Epsilon)
	assert.Equal(t, 1000, cfg.Optimization.MaxIterations)
	assert.Equal(t, 50, cfg.Optimization.LipschitzSamples)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("OPT_EPSILON", "0.01")
	t.Setenv("OPT_MAX_ITERATIONS", "250")
	t.Setenv("OPT_LIPSCHITZ_SAMPLES", "16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 0.01, cfg.Optimization.Epsilon)
	assert.Equal(t, 250, cfg.Optimization.MaxIterations)
	assert.Equal(t, 16, cfg.Optimization.LipschitzSamples)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
