package opengl

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/core"
)

// Info is the driver identification read once when the context is created.
type Info struct {
	APIVersion             string
	ShadingLanguageVersion string
	Renderer               string
	Vendor                 string
}

// Extensions logged at start-up. The handle wrappers rely on both.
var requiredExtensions = []string{
	"GL_ARB_buffer_storage",
	"GL_ARB_direct_state_access",
}

// Context is the facade over the current graphics context. It tracks the
// active program, vertex array and per-target buffer bindings as explicit
// stacks so nested code can activate a resource and restore the previous one
// when it returns.
//
// A Context is created once by the bootstrap code and passed to everything
// that needs it. It is bound to the render thread and is not safe for
// concurrent use.
type Context struct {
	noCopy noCopy

	driver     Driver
	info       Info
	extensions map[string]struct{}

	programs     []Handle
	vertexArrays []Handle
	buffers      map[BufferTarget][]Handle

	closed bool
}

// NewContext wraps the driver of the context current on the calling thread.
func NewContext(d Driver) (*Context, error) {
	if code, n := drainErrors(d); n > 0 {
		core.LogDebug("discarded %d pending driver errors, last %s", n, ErrorString(code))
	}

	c := &Context{
		driver: d,
		info: Info{
			APIVersion:             d.GetString(Version),
			ShadingLanguageVersion: d.GetString(ShadingLanguageVersion),
			Renderer:               d.GetString(RendererName),
			Vendor:                 d.GetString(Vendor),
		},
		extensions: make(map[string]struct{}),
		buffers:    make(map[BufferTarget][]Handle),
	}
	n := d.GetIntegerv(ParamNumExtensions)
	for i := int32(0); i < n; i++ {
		c.extensions[d.GetStringi(Extensions, uint32(i))] = struct{}{}
	}
	if err := checkDriver(d, "context introspection"); err != nil {
		return nil, err
	}

	core.LogInfo("OpenGL context initialized.")
	core.LogInfo("  API version: %s", c.info.APIVersion)
	core.LogInfo("  GLSL version: %s", c.info.ShadingLanguageVersion)
	core.LogInfo("  Renderer: %s", c.info.Renderer)
	core.LogInfo("  Vendor: %s", c.info.Vendor)
	for _, ext := range requiredExtensions {
		core.LogInfo("  %s supported: %t", ext, c.IsSupported(ext))
	}
	return c, nil
}

// Driver returns the driver used to create resources on this context.
func (c *Context) Driver() Driver {
	return c.driver
}

func (c *Context) Info() Info {
	return c.info
}

// IsSupported reports whether the named extension is advertised.
func (c *Context) IsSupported(extension string) bool {
	_, ok := c.extensions[extension]
	return ok
}

// PushProgram makes p the active program.
func (c *Context) PushProgram(p Bindable) {
	h := handleOf(p)
	c.programs = append(c.programs, h)
	c.driver.UseProgram(h)
}

// PopProgram restores the program active before the last PushProgram.
// Popping an empty stack is a caller bug; it is logged and ignored.
func (c *Context) PopProgram() {
	if len(c.programs) == 0 {
		core.LogWarn("PopProgram called with an empty program stack")
		return
	}
	c.programs = c.programs[:len(c.programs)-1]
	c.driver.UseProgram(top(c.programs))
}

// ActiveProgram returns the program on top of the stack, or InvalidHandle.
func (c *Context) ActiveProgram() Handle {
	return top(c.programs)
}

// PushVertexArray makes v the active vertex array.
func (c *Context) PushVertexArray(v Bindable) {
	h := handleOf(v)
	c.vertexArrays = append(c.vertexArrays, h)
	c.driver.BindVertexArray(h)
}

// PopVertexArray restores the vertex array bound before the last
// PushVertexArray.
func (c *Context) PopVertexArray() {
	if len(c.vertexArrays) == 0 {
		core.LogWarn("PopVertexArray called with an empty vertex array stack")
		return
	}
	c.vertexArrays = c.vertexArrays[:len(c.vertexArrays)-1]
	c.driver.BindVertexArray(top(c.vertexArrays))
}

func (c *Context) ActiveVertexArray() Handle {
	return top(c.vertexArrays)
}

// PushBuffer binds b to target.
func (c *Context) PushBuffer(target BufferTarget, b Bindable) {
	h := handleOf(b)
	c.buffers[target] = append(c.buffers[target], h)
	c.driver.BindBuffer(target, h)
}

// PopBuffer restores the buffer bound to target before the last PushBuffer.
func (c *Context) PopBuffer(target BufferTarget) {
	stack := c.buffers[target]
	if len(stack) == 0 {
		core.LogWarn("PopBuffer called with an empty stack for target 0x%04X", uint32(target))
		return
	}
	stack = stack[:len(stack)-1]
	c.buffers[target] = stack
	c.driver.BindBuffer(target, top(stack))
}

func (c *Context) ActiveBuffer(target BufferTarget) Handle {
	return top(c.buffers[target])
}

func top(stack []Handle) Handle {
	if len(stack) == 0 {
		return InvalidHandle
	}
	return stack[len(stack)-1]
}

// SetUniformFloat uploads a scalar to the active program.
func (c *Context) SetUniformFloat(location int32, v float32) {
	c.driver.Uniform1f(location, v)
}

// SetUniformVec4 uploads a four component vector to the active program.
func (c *Context) SetUniformVec4(location int32, v mgl32.Vec4) {
	c.driver.Uniform4fv(location, v)
}

// SetUniformMat4 uploads a column-major matrix to the active program.
func (c *Context) SetUniformMat4(location int32, m mgl32.Mat4) {
	c.driver.UniformMatrix4fv(location, m)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.driver.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(color mgl32.Vec4) {
	c.driver.ClearColor(color[0], color[1], color[2], color[3])
}

func (c *Context) Clear(mask ClearMask) {
	c.driver.Clear(mask)
}

func (c *Context) DrawArrays(mode PrimitiveKind, first, count int32) {
	c.driver.DrawArrays(mode, first, count)
}

func (c *Context) DrawElements(mode PrimitiveKind, count int32, xtype ScalarType, offset int) {
	c.driver.DrawElements(mode, count, xtype, offset)
}

// LastError drains the driver error queue and returns the most recent code.
// Earlier codes in the queue are counted and logged.
func (c *Context) LastError() ErrorCode {
	code, n := drainErrors(c.driver)
	if n > 1 {
		core.LogWarn("%d driver errors were reported, returning the last one", n)
	}
	return code
}

// CheckError returns a *GraphicsError for op if the driver reported one.
func (c *Context) CheckError(op string) error {
	if c.closed {
		return ErrContextClosed
	}
	if code := c.LastError(); code != NoError {
		return &GraphicsError{Op: op, Code: code}
	}
	return nil
}

// Close releases the facade. Resources still pushed on any stack are
// reported since they indicate an unbalanced push.
func (c *Context) Close() {
	if c.closed {
		return
	}
	if n := len(c.programs); n > 0 {
		core.LogWarn("context closed with %d programs still pushed", n)
	}
	if n := len(c.vertexArrays); n > 0 {
		core.LogWarn("context closed with %d vertex arrays still pushed", n)
	}
	for target, stack := range c.buffers {
		if len(stack) > 0 {
			core.LogWarn("context closed with %d buffers still pushed on target 0x%04X", len(stack), uint32(target))
		}
	}
	c.closed = true
	core.LogInfo("OpenGL context terminated.")
}
