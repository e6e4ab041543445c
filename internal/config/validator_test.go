package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv(t *testing.T) {
	t.Run("missing version", func(t *testing.T) {
		clearEnvVars(t)

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
	})

	t.Run("version mismatch", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
	})

	t.Run("postgres backend needs db vars", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "k")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER")
		assert.NotContains(t, err.Error(), "REDIS_ADDR")
	})

	t.Run("memory backend needs only the basics", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "k")
		t.Setenv("STORE_BACKEND", StoreBackendMemory)

		assert.NoError(t, ValidateEnv())
	})

	t.Run("redis backend needs an address", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "k")
		t.Setenv("STORE_BACKEND", StoreBackendRedis)

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REDIS_ADDR")
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_BACKEND", StoreBackendPostgres)
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "db")
	t.Setenv("FORCE_WIN_FOR_TESTING", "true")

	warnings, err := ValidateEnvWithWarnings()

	require.NoError(t, err)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "FORCE_WIN_FOR_TESTING")
}
