package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("NIMBLEPAY_API_KEY_ID", "key_env")
	t.Setenv("NIMBLEPAY_API_KEY_SECRET", "secret_env")
	t.Setenv("NIMBLEPAY_LOGGING_LEVEL", "debug")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "key_env", cfg.API.KeyID)
	assert.Equal(t, "secret_env", cfg.API.KeySecret)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
}

func TestValidateRequiresCredentials(t *testing.T) {
	cfg := GetDefaultConfig()
	require.Error(t, cfg.Validate())

	cfg.API.KeyID = "key_test"
	cfg.API.KeySecret = "secret_test"
	require.NoError(t, cfg.Validate())
}
