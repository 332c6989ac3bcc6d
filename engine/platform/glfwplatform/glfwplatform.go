package glfwplatform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/platform"
)

func init() {
	// GLFW event handling and the OpenGL context must stay on the main OS thread
	runtime.LockOSThread()
}

var _ platform.Window = (*Platform)(nil)

// noCopy lets go vet's copylocks check report copies of a Platform.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Platform owns the glfw window and its OpenGL core profile context. It is
// created once by the bootstrap code and handed to the engine; Shutdown
// releases the window and glfw with it.
type Platform struct {
	noCopy noCopy

	window      *glfw.Window
	keyCallback platform.KeyCallback
}

// New initialises glfw, creates the window and makes its context current on
// the calling thread.
func New(cfg platform.Config) (*Platform, error) {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return nil, err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		glfw.Terminate()
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	p := &Platform{window: window}
	window.SetKeyCallback(p.onKey)
	window.SetPos(cfg.PosX, cfg.PosY)
	window.Show()

	core.LogInfo("GLFW initialized! API version: %s", glfw.GetVersionString())
	return p, nil
}

func (p *Platform) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if p.keyCallback != nil {
		p.keyCallback(core.KeyCode(key), core.KeyAction(action), core.ModifierKey(mods))
	}
}

// Time returns the seconds since glfw was initialised.
func (p *Platform) Time() float64 {
	return glfw.GetTime()
}

func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

func (p *Platform) SwapBuffers() {
	if p.window != nil {
		p.window.SwapBuffers()
	}
}

// ShouldClose is always true once the window is gone.
func (p *Platform) ShouldClose() bool {
	return p.window == nil || p.window.ShouldClose()
}

func (p *Platform) SetShouldClose(value bool) {
	if p.window != nil {
		p.window.SetShouldClose(value)
	}
}

// FramebufferSize returns the drawable size in pixels, which differs from
// the window size on high density displays.
func (p *Platform) FramebufferSize() (int, int) {
	if p.window == nil {
		return 0, 0
	}
	return p.window.GetFramebufferSize()
}

func (p *Platform) SetKeyCallback(fn platform.KeyCallback) {
	p.keyCallback = fn
}

// Shutdown destroys the window and terminates glfw. Later calls do nothing.
func (p *Platform) Shutdown() {
	if p.window == nil {
		return
	}
	p.window.Destroy()
	p.window = nil
	glfw.Terminate()
	core.LogInfo("GLFW terminated.")
}
