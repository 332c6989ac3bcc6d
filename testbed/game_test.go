package testbed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lineage/engine"
)

func TestNewTestGameDefaults(t *testing.T) {
	tg, err := NewTestGame(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultApplicationConfig(), tg.ApplicationConfig)
	assert.Empty(t, tg.ConfigPath)
	assert.NotNil(t, tg.FnUpdate)
}

func TestNewTestGameLoadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineage.toml")
	require.NoError(t, os.WriteFile(path, []byte("scene = \"single_cube\"\n"), 0o644))

	tg, err := NewTestGame(path)
	require.NoError(t, err)
	assert.Equal(t, "single_cube", tg.ApplicationConfig.Scene)
	assert.Equal(t, path, tg.ConfigPath)
}

func TestNewTestGameRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineage.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = 0\n"), 0o644))

	_, err := NewTestGame(path)
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
}
