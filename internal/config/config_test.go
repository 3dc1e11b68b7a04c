package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8000", cfg.Server.Addr)
	assert.Equal(t, SecretsBackendEnv, cfg.Secrets.Backend)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Logger.Development)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("CONNECTOR_SERVICE_ADDR", "payments.internal:9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "payments.internal:9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.Development)
}

func TestLoadFromEnvSecretsBackend(t *testing.T) {
	t.Run("vault requires address", func(t *testing.T) {
		t.Setenv("SECRETS_BACKEND", "vault")

		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VAULT_ADDR")
	})

	t.Run("vault with address", func(t *testing.T) {
		t.Setenv("SECRETS_BACKEND", "vault")
		t.Setenv("VAULT_ADDR", "https://vault.internal:8200")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, SecretsBackendVault, cfg.Secrets.Backend)
		assert.Equal(t, "secret", cfg.Secrets.VaultMountPath)
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		t.Setenv("SECRETS_BACKEND", "gcp")

		_, err := LoadFromEnv()
		require.Error(t, err)
	})
}
