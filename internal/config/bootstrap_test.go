package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserConfigSeedsDataDir(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yml")
	require.NoError(t, os.WriteFile(def, []byte("app:\n  data_dir: .\n"), 0o644))

	dataDir := filepath.Join(dir, "data")
	got, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), got)

	b, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "app:\n  data_dir: .\n", string(b))

	// Raw-cache directory comes along for the ride.
	info, err := os.Stat(filepath.Join(dataDir, "raw"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureUserConfigKeepsLocalEdits(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yml")
	require.NoError(t, os.WriteFile(def, []byte("fetch:\n  burst: 2\n"), 0o644))

	first, err := EnsureUserConfig(dir, def)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(first, []byte("fetch:\n  burst: 9\n"), 0o644))

	// A later default must not clobber the user's copy.
	require.NoError(t, os.WriteFile(def, []byte("fetch:\n  burst: 3\n"), 0o644))
	second, err := EnsureUserConfig(dir, def)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "fetch:\n  burst: 9\n", string(b))
}
