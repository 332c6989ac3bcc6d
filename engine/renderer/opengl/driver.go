package opengl

import "github.com/go-gl/mathgl/mgl32"

// Driver is the subset of the OpenGL 4.5 core API used by the wrappers in
// this package. All calls are made from the render thread which owns the
// current context.
//
// Methods map one to one onto GL entry points using direct state access. The
// gldriver package implements Driver on top of go-gl; opengltest provides a
// recording fake.
type Driver interface {
	GetError() ErrorCode
	GetString(name StringName) string
	GetStringi(name StringName, index uint32) string
	GetIntegerv(pname uint32) int32

	// buffers
	CreateBuffer() Handle
	DeleteBuffer(buffer Handle)
	NamedBufferStorage(buffer Handle, data []byte, flags StorageFlags)
	NamedBufferData(buffer Handle, data []byte, usage BufferUsage)
	NamedBufferSubData(buffer Handle, offset int, data []byte)
	GetNamedBufferSubData(buffer Handle, offset int, dst []byte)
	GetNamedBufferParameteriv(buffer Handle, pname uint32) int32
	GetNamedBufferParameteri64v(buffer Handle, pname uint32) int64
	MapNamedBuffer(buffer Handle, access MapAccess) []byte
	UnmapNamedBuffer(buffer Handle) bool
	BindBuffer(target BufferTarget, buffer Handle)

	// shaders
	CreateShader(stage ShaderStage) Handle
	DeleteShader(shader Handle)
	ShaderSource(shader Handle, source string)
	CompileShader(shader Handle)
	GetShaderiv(shader Handle, pname uint32) int32
	GetShaderInfoLog(shader Handle) string

	// programs
	CreateProgram() Handle
	DeleteProgram(program Handle)
	AttachShader(program, shader Handle)
	DetachShader(program, shader Handle)
	LinkProgram(program Handle)
	GetProgramiv(program Handle, pname uint32) int32
	GetProgramInfoLog(program Handle) string
	GetAttribLocation(program Handle, name string) int32
	GetUniformLocation(program Handle, name string) int32
	UseProgram(program Handle)

	// vertex arrays
	CreateVertexArray() Handle
	DeleteVertexArray(vao Handle)
	BindVertexArray(vao Handle)
	VertexArrayAttribFormat(vao Handle, index uint32, count int32, xtype ScalarType, normalized bool, offset uint32)
	VertexArrayAttribBinding(vao Handle, index, binding uint32)
	EnableVertexArrayAttrib(vao Handle, index uint32)
	DisableVertexArrayAttrib(vao Handle, index uint32)
	VertexArrayVertexBuffer(vao Handle, binding uint32, buffer Handle, offset int, stride int32)
	VertexArrayElementBuffer(vao Handle, buffer Handle)

	// uniforms
	Uniform1f(location int32, v float32)
	Uniform4fv(location int32, v mgl32.Vec4)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	// frame
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)
	DrawArrays(mode PrimitiveKind, first, count int32)
	DrawElements(mode PrimitiveKind, count int32, xtype ScalarType, offset int)
}

// maxDrainedErrors bounds LastError against drivers that keep reporting an
// error, such as a lost context.
const maxDrainedErrors = 64

// drainErrors empties the driver error queue and returns the most recent
// code along with the number of errors read.
func drainErrors(d Driver) (ErrorCode, int) {
	last := NoError
	n := 0
	for n < maxDrainedErrors {
		code := d.GetError()
		if code == NoError {
			break
		}
		last = code
		n++
	}
	return last, n
}
