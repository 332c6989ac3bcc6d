package platform

import "github.com/spaghettifunk/lineage/engine/core"

// KeyCallback receives raw key events in glfw key codes.
type KeyCallback func(key core.KeyCode, action core.KeyAction, mods core.ModifierKey)

// Window is the surface the application loop needs from the windowing
// system.
type Window interface {
	Time() float64
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(value bool)
	FramebufferSize() (int, int)
	SetKeyCallback(fn KeyCallback)
}

// Config describes the window and the OpenGL context to create.
type Config struct {
	Title        string
	PosX         int
	PosY         int
	Width        int
	Height       int
	SwapInterval int
	ContextMajor int
	ContextMinor int
	Debug        bool
}
