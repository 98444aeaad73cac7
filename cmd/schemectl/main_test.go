package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"schemebridge/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestNetErrorsLookup(t *testing.T) {
	out, err := execute(t, "neterrors", "-101", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "-101\tERR_CONNECTION_RESET")
	assert.Contains(t, out, "0\tNET_OK")

	_, err = execute(t, "neterrors", "-99999", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-99999")
	assert.Contains(t, err.Error(), "abc")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sb.yaml")
	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig().HTTP, loaded.HTTP)
}
