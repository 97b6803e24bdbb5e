package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sst-launcher/internal/config"
)

func TestConfigInitWritesDefaults(t *testing.T) {
	for _, name := range []string{"launcher.yaml", "launcher.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			stdout, _, err := execute(t, "config", "init", path)
			require.NoError(t, err)
			assert.Contains(t, stdout, path)

			loaded, err := config.LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, config.DefaultConfig(), loaded)
		})
	}
}

func TestConfigInitDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, config.DefaultConfigFile))
}

func TestConfigInitKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suites: [shared.test.All]\n"), 0644))

	_, _, err := execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "suites: [shared.test.All]\n", string(data))

	_, _, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)
	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Suites, 4)
}
