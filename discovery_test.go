package simparams

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiscoverFile tests config file discovery priority
func TestDiscoverFile(t *testing.T) {
	t.Run("CLIFlagWins", func(t *testing.T) {
		t.Setenv("SIMTEST_CONFIG", "/from/env.toml")

		opts := DefaultDiscoveryOptions("simtest")
		path := DiscoverFile(opts, []string{"--config", "/from/cli.toml"})
		assert.Equal(t, "/from/cli.toml", path)
	})

	t.Run("CLIFlagEqualsForm", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("simtest")
		path := DiscoverFile(opts, []string{"--config=/from/cli.toml"})
		assert.Equal(t, "/from/cli.toml", path)
	})

	t.Run("EnvVarSecond", func(t *testing.T) {
		t.Setenv("SIMTEST_CONFIG", "/from/env.toml")

		opts := DefaultDiscoveryOptions("simtest")
		path := DiscoverFile(opts, nil)
		assert.Equal(t, "/from/env.toml", path)
	})

	t.Run("SearchPathByExtensionOrder", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "simtest.yaml"), nil, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "simtest.toml"), nil, 0644))

		opts := DefaultDiscoveryOptions("simtest")
		opts.Paths = []string{dir}
		opts.UseCurrentDir = false
		opts.UseXDG = false

		path := DiscoverFile(opts, nil)
		assert.Equal(t, filepath.Join(dir, "simtest.toml"), path)
	})

	t.Run("NothingFound", func(t *testing.T) {
		opts := DefaultDiscoveryOptions("simtest")
		opts.Paths = []string{t.TempDir()}
		opts.UseCurrentDir = false
		opts.UseXDG = false

		assert.Equal(t, "", DiscoverFile(opts, nil))
	})
}

func TestBuilderWithFileDiscovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simtest.toml")
	require.NoError(t, os.WriteFile(path, []byte("Lx = 8\n"), 0644))

	opts := DefaultDiscoveryOptions("simtest")
	opts.Paths = []string{dir}
	opts.UseCurrentDir = false
	opts.UseXDG = false

	m, err := NewBuilder().
		WithArgs(nil).
		WithFileDiscovery(opts).
		Build()
	require.NoError(t, err)

	lx, err := m.ExtentX()
	require.NoError(t, err)
	assert.Equal(t, int64(8), lx)
}
