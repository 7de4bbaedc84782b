package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"SALESFORCE_TOKEN_URL",
		"CONSUMER_KEY", "SALESFORCE_CONSUMER_KEY",
		"CONSUMER_SECRET", "SALESFORCE_CONSUMER_SECRET",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
auth:
  token_url: https://login.example.com/services/oauth2/token
  consumer_key: key
  consumer_secret: secret
api_version: "60.0"
cache_dir: /tmp/defs
objects:
  - Account
  - Contact
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://login.example.com/services/oauth2/token", cfg.Auth.TokenURL)
	assert.Equal(t, "60.0", cfg.APIVersion)
	assert.Equal(t, "/tmp/defs", cfg.CacheDir)
	assert.Equal(t, []string{"Account", "Contact"}, cfg.Objects)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
auth:
  token_url: https://login.example.com/token
  consumer_key: key
  consumer_secret: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "59.0", cfg.APIVersion)
	assert.Equal(t, "./cache", cfg.CacheDir)
}

func TestLoadEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("SALESFORCE_TOKEN_URL", "https://env.example.com/token")
	t.Setenv("CONSUMER_KEY", "env-key")
	t.Setenv("SALESFORCE_CONSUMER_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/token", cfg.Auth.TokenURL)
	assert.Equal(t, "env-key", cfg.Auth.ConsumerKey)
	assert.Equal(t, "env-secret", cfg.Auth.ConsumerSecret)
}

func TestLoadFilePrecedesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONSUMER_KEY", "env-key")
	path := writeConfig(t, `
auth:
  token_url: https://login.example.com/token
  consumer_key: file-key
  consumer_secret: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Auth.ConsumerKey)
}

func TestLoadMissingAuth(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token_url")
}

func TestLoadBadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "auth: [not-a-mapping")

	_, err := Load(path)
	assert.Error(t, err)
}
