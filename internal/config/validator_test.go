package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets every variable ValidateEnv checks for postgres storage
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAPIKey, "key")
	t.Setenv(EnvJWTSecret, strings.Repeat("s", 32))
	t.Setenv(EnvAdministrator, "admin")
	t.Setenv(EnvStorageDriver, "")
	for _, envVar := range RequiredPostgresEnvVars {
		t.Setenv(envVar, "test_value")
	}
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")
	os.Unsetenv(EnvSchemaVersion)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvJWTSecret, "")
	t.Setenv(EnvDBHost, "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), EnvJWTSecret)
	assert.Contains(t, err.Error(), EnvDBHost)
}

func TestValidateEnv_MemoryStorageSkipsDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvStorageDriver, StorageDriverMemory)
	for _, envVar := range RequiredPostgresEnvVars {
		t.Setenv(envVar, "")
	}

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(EnvDBPassword, "change_this_secure_password")
	t.Setenv(EnvAPIKey, "generate_with_openssl_rand_hex_32")
	t.Setenv(EnvJWTSecret, "short")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "JWT_SECRET")
}

func TestValidateEnvWithWarnings_Clean(t *testing.T) {
	setRequiredEnv(t)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
