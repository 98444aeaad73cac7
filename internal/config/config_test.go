package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"schemebridge/internal/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig().Loop, cfg.Loop)
	assert.Equal(t, "schemebridge_", cfg.Sqlite.Prefix)
	assert.Empty(t, cfg.Routes)
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "schemebridge.yaml")
	c := NewConfig()
	c.Routes = []rules.Route{
		{ID: "api", Scheme: "app", Pattern: "https://app.local/api/", Mode: rules.ModePrefix, Priority: 5},
	}
	c.Script.Watch = true
	require.NoError(t, Write(path, c, false))

	err := Write(path, c, false)
	assert.True(t, errors.Is(err, os.ErrExist))
	require.NoError(t, Write(path, c, true))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got.Routes, 1)
	assert.Equal(t, c.Routes[0], got.Routes[0])
	assert.True(t, got.Script.Watch)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nhttp:\n  addr: 0.0.0.0:1\n"), 0o644))
	t.Setenv("SCHEMEBRIDGE_HTTP_ADDR", "127.0.0.1:9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
}

func TestValidate(t *testing.T) {
	c := NewConfig()
	c.Loop.QueueSize = 0
	c.Loop.ProcessTimeoutMS = -1
	c.Routes = []rules.Route{
		{Pattern: "x"},
		{Scheme: "a", Pattern: "(", Mode: rules.ModeRegex},
		{Scheme: "a", Pattern: "x", Mode: "fuzzy"},
	}
	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "queue_size")
	assert.Contains(t, msg, "process_timeout_ms")
	assert.Contains(t, msg, "routes[0]")
	assert.Contains(t, msg, "routes[1]")
	assert.Contains(t, msg, "fuzzy")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
