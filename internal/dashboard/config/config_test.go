package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api/v1", cfg.Backend.APIBaseURL())
	assert.Equal(t, "http://localhost:8000/health", cfg.Backend.HealthURL())
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 8501, cfg.API.Port)
	assert.Equal(t, time.Minute, cfg.UI.FlashTTL)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config-dashboard.yaml")
	content := []byte(`
app:
  name: dash
backend:
  base_url: http://backend:9000/
  timeout: 5s
api:
  port: 9090
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("BACKEND_MAX_REQUEST_PER_MINUTE", "120")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dash", cfg.App.Name)
	assert.Equal(t, "http://backend:9000/api/v1", cfg.Backend.APIBaseURL())
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, 120, cfg.Backend.MaxRequestPerMinute)
}
