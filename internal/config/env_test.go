package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotEnvSetsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "SIM_STEPS=9\nSIM_SEED=77\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	unsetEnv(t, "SIM_STEPS")
	unsetEnv(t, "SIM_SEED")

	require.NoError(t, godotenv.Load(path))

	assert.Equal(t, "9", os.Getenv("SIM_STEPS"))
	assert.Equal(t, "77", os.Getenv("SIM_SEED"))
}

func TestDotEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SIM_STEPS=9\n"), 0o600))
	t.Setenv("SIM_STEPS", "4")

	require.NoError(t, godotenv.Load(path))

	assert.Equal(t, "4", os.Getenv("SIM_STEPS"))
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset env: %v", err)
	}
}
