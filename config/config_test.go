package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("ENV", "test")

	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "culinarycode", cfg.DBName)
		assert.Equal(t, "deepseek", cfg.LLMProvider)
		assert.Equal(t, 60*time.Second, cfg.LLMTimeout)
		assert.Equal(t, 3, cfg.MaxGenerationAttempts)
		assert.Equal(t, 4, cfg.BatchConcurrency)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("LLM_PROVIDER", "ollama")
		t.Setenv("LLM_TIMEOUT", "2m")
		t.Setenv("MAX_GENERATION_ATTEMPTS", "5")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.ServerPort)
		assert.Equal(t, "ollama", cfg.LLMProvider)
		assert.Equal(t, 2*time.Minute, cfg.LLMTimeout)
		assert.Equal(t, 5, cfg.MaxGenerationAttempts)
	})

	t.Run("should read secrets from files", func(t *testing.T) {
		secretPath := filepath.Join(t.TempDir(), "deepseek_api_key")
		require.NoError(t, os.WriteFile(secretPath, []byte("file-secret\n"), 0o600))
		t.Setenv("DEEPSEEK_API_KEY_FILE", secretPath)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "file-secret", cfg.DeepSeekAPIKey)
	})

	t.Run("should prefer the environment over the secret file", func(t *testing.T) {
		secretPath := filepath.Join(t.TempDir(), "deepseek_api_key")
		require.NoError(t, os.WriteFile(secretPath, []byte("file-secret"), 0o600))
		t.Setenv("DEEPSEEK_API_KEY_FILE", secretPath)
		t.Setenv("DEEPSEEK_API_KEY", "env-secret")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "env-secret", cfg.DeepSeekAPIKey)
	})

	t.Run("should reject an unknown LLM provider", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "gpt-neo")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_PROVIDER")
	})

	t.Run("should reject a zero retry budget", func(t *testing.T) {
		t.Setenv("MAX_GENERATION_ATTEMPTS", "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_GENERATION_ATTEMPTS")
	})

	t.Run("should build a postgres DSN", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		dsn := cfg.DSN()

		assert.Contains(t, dsn, "host=localhost")
		assert.Contains(t, dsn, "dbname=culinarycode")
		assert.Contains(t, dsn, "sslmode=disable")
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Run("should default to development", func(t *testing.T) {
		t.Setenv("CI", "false")
		t.Setenv("ENV", "")

		assert.Equal(t, Development, GetEnvironment())
		assert.True(t, IsDevelopment())
		assert.False(t, IsProduction())
	})

	t.Run("should honor ENV", func(t *testing.T) {
		t.Setenv("CI", "false")

		t.Setenv("ENV", "production")
		assert.True(t, IsProduction())

		t.Setenv("ENV", "test")
		assert.True(t, IsTest())
	})

	t.Run("should detect CI automatically", func(t *testing.T) {
		t.Setenv("CI", "true")
		t.Setenv("ENV", "production")

		assert.Equal(t, CI, GetEnvironment())
		assert.True(t, IsCI())
	})
}

func TestLoad_RequiresDeepSeekKeyOutsideTests(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CI", "false")
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("DEEPSEEK_API_KEY_FILE", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEEPSEEK_API_KEY")
}
