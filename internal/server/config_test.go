package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVE_FRONTEND", "")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig_OverlaysFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := []byte("host: 127.0.0.1\nport: 9000\nread_timeout_seconds: 5\nenable_cors: false\nserve_frontend: true\nstatic_dir: dist\nlog_level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1", config.Host)
	assert.Equal(t, 9000, config.Port)
	assert.Equal(t, 5*time.Second, config.ReadTimeout)
	assert.False(t, config.EnableCORS)
	assert.True(t, config.ServeFrontend)
	assert.Equal(t, "dist", config.StaticDir)
	assert.Equal(t, "debug", config.LogLevel)

	// Unset fields keep defaults.
	assert.Equal(t, 10*time.Second, config.WriteTimeout)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0o644))

	t.Setenv("PORT", "8123")
	t.Setenv("SERVE_FRONTEND", "true")

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, 8123, config.Port)
	assert.True(t, config.ServeFrontend)
}

func TestLoadConfig_BadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [broken"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestServerRoutes_EndToEnd(t *testing.T) {
	config := DefaultConfig()
	config.LogLevel = "error"
	testServer := New(config)

	cases := []struct {
		path string
		code int
	}{
		{"/", 200},
		{"/health", 200},
		{"/api/status", 200},
		{"/api/info", 200},
		{"/nope", 404},
	}

	for _, tc := range cases {
		w := performRequest(testServer, tc.path)
		assert.Equal(t, tc.code, w.Code, "path %s", tc.path)
	}
}
