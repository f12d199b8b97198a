package assistant_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cakap/upskill/pkg/assistant"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "upskill.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("VERTEX_TOKEN", "secret-token")

	path := writeConfig(t, `
project: my-project
region: asia-southeast1
access_token: ${VERTEX_TOKEN}
temperature: 0.1
max_output_tokens: 2048
stream: false
catalog_uri: gs://cakap-assets/catalog.pdf
`)

	cfg, err := assistant.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "my-project", cfg.Project)
	assert.Equal(t, "asia-southeast1", cfg.Region)
	assert.Equal(t, "secret-token", cfg.AccessToken)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-9)
	assert.Equal(t, 2048, cfg.MaxOutputTokens)
	assert.False(t, cfg.Stream)
	assert.Equal(t, "gs://cakap-assets/catalog.pdf", cfg.CatalogURI)

	// Unset keys keep their defaults.
	assert.Equal(t, "gemini-1.5-flash", cfg.FastModel)
	assert.Equal(t, "gemini-1.5-pro", cfg.QualityModel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := assistant.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, assistant.DefaultConfig(), cfg)
	assert.True(t, cfg.Stream)
	assert.InDelta(t, 0.95, cfg.Temperature, 1e-9)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := writeConfig(t, "temperature: [not a number")

	_, err := assistant.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfig_Validate(t *testing.T) {
	cfg := assistant.DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.FastModel = ""
	assert.Error(t, cfg.Validate())
}
