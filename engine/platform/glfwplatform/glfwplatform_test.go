package glfwplatform

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lineage/engine/platform"
)

func testConfig() platform.Config {
	return platform.Config{
		Title:        "glfwplatform test",
		Width:        64,
		Height:       64,
		SwapInterval: 0,
		ContextMajor: 4,
		ContextMinor: 5,
	}
}

func TestShutdownReleasesWindowOnce(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("glfw windows must be created on the main thread on darwin")
	}
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display available")
	}
	p, err := New(testConfig())
	if err != nil {
		t.Skipf("cannot create an OpenGL 4.5 window: %v", err)
	}

	assert.False(t, p.ShouldClose())
	p.Shutdown()
	assert.True(t, p.ShouldClose())
	w, h := p.FramebufferSize()
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.NotPanics(t, func() {
		p.SwapBuffers()
		p.SetShouldClose(false)
		p.Shutdown()
	})

	// the platform no longer holds any process wide claim
	q, err := New(testConfig())
	require.NoError(t, err)
	q.Shutdown()
}
