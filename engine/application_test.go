package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const partialConfig = `
log_level = "debug"
scene = "single_cube"

[window]
width = 1280
height = 720

[renderer]
manager = "prototype"
poll_errors = true
background = [0.0, 0.5, 1.0, 1.0]
`

func TestDecodeApplicationConfigKeepsDefaults(t *testing.T) {
	cfg, err := DecodeApplicationConfig(strings.NewReader(partialConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "single_cube", cfg.Scene)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "prototype", cfg.Renderer.Manager)
	assert.True(t, cfg.Renderer.PollErrors)
	assert.Equal(t, mgl32.Vec4{0, 0.5, 1, 1}, cfg.BackgroundColor())

	// untouched keys
	assert.Equal(t, "Lineage", cfg.Window.Title)
	assert.Equal(t, 1, cfg.Window.SwapInterval)
	assert.False(t, cfg.Renderer.DebugOutput)

	pc := cfg.PlatformConfig()
	assert.Equal(t, 4, pc.ContextMajor)
	assert.Equal(t, 5, pc.ContextMinor)
	assert.Equal(t, 1280, pc.Width)
}

func TestDecodeApplicationConfigErrors(t *testing.T) {
	_, err := DecodeApplicationConfig(strings.NewReader("colour = \"red\"\n"))
	assert.Error(t, err)

	_, err = DecodeApplicationConfig(strings.NewReader("[window]\nwidth = -1\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DecodeApplicationConfig(strings.NewReader("log_level = \"loud\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DecodeApplicationConfig(strings.NewReader("scene = \"teapot\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DecodeApplicationConfig(strings.NewReader("[renderer]\nmanager = \"vulkan\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DecodeApplicationConfig(strings.NewReader("[renderer]\nbackground = [2.0, 0.0, 0.0, 1.0]\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveAndLoadApplicationConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineage.toml")
	cfg := DefaultApplicationConfig()
	cfg.Window.Title = "saved"
	cfg.Renderer.PollErrors = true
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadApplicationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = LoadApplicationConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineage.toml")
	require.NoError(t, DefaultApplicationConfig().Save(path))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	defer w.Close()

	changed := DefaultApplicationConfig()
	changed.LogLevel = "warn"
	changed.Renderer.PollErrors = true
	require.NoError(t, changed.Save(path))

	// a write may be observed half way, so wait for the final content
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Reloads():
			if cfg.LogLevel != "warn" {
				continue
			}
			assert.True(t, cfg.Renderer.PollErrors)
			return
		case <-timeout:
			t.Fatal("no reload after the config file changed")
		}
	}
}

func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lineage.toml")
	require.NoError(t, DefaultApplicationConfig().Save(path))

	w, err := WatchConfig(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644))
	select {
	case cfg := <-w.Reloads():
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(200 * time.Millisecond):
	}
}
