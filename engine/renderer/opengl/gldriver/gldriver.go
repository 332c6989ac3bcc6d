// Package gldriver implements opengl.Driver on top of the go-gl OpenGL 4.5
// core bindings. Every method must be called from the thread which owns the
// current context.
package gldriver

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
)

var _ opengl.Driver = Driver{}

// Driver forwards to the process-wide go-gl function table.
type Driver struct{}

// New loads the OpenGL function pointers for the context current on the
// calling thread.
func New() (Driver, error) {
	if err := gl.Init(); err != nil {
		return Driver{}, err
	}
	return Driver{}, nil
}

func (Driver) GetError() opengl.ErrorCode {
	return opengl.ErrorCode(gl.GetError())
}

func (Driver) GetString(name opengl.StringName) string {
	s := gl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Driver) GetStringi(name opengl.StringName, index uint32) string {
	s := gl.GetStringi(uint32(name), index)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (Driver) GetIntegerv(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (Driver) CreateBuffer() opengl.Handle {
	var h uint32
	gl.CreateBuffers(1, &h)
	return opengl.Handle(h)
}

func (Driver) DeleteBuffer(buffer opengl.Handle) {
	h := uint32(buffer)
	gl.DeleteBuffers(1, &h)
}

func (Driver) NamedBufferStorage(buffer opengl.Handle, data []byte, flags opengl.StorageFlags) {
	gl.NamedBufferStorage(uint32(buffer), len(data), ptr(data), uint32(flags))
}

func (Driver) NamedBufferData(buffer opengl.Handle, data []byte, usage opengl.BufferUsage) {
	gl.NamedBufferData(uint32(buffer), len(data), ptr(data), uint32(usage))
}

func (Driver) NamedBufferSubData(buffer opengl.Handle, offset int, data []byte) {
	gl.NamedBufferSubData(uint32(buffer), offset, len(data), ptr(data))
}

func (Driver) GetNamedBufferSubData(buffer opengl.Handle, offset int, dst []byte) {
	gl.GetNamedBufferSubData(uint32(buffer), offset, len(dst), ptr(dst))
}

func (Driver) GetNamedBufferParameteriv(buffer opengl.Handle, pname uint32) int32 {
	var v int32
	gl.GetNamedBufferParameteriv(uint32(buffer), pname, &v)
	return v
}

func (Driver) GetNamedBufferParameteri64v(buffer opengl.Handle, pname uint32) int64 {
	var v int64
	gl.GetNamedBufferParameteri64v(uint32(buffer), pname, &v)
	return v
}

func (d Driver) MapNamedBuffer(buffer opengl.Handle, access opengl.MapAccess) []byte {
	p := gl.MapNamedBuffer(uint32(buffer), uint32(access))
	if p == nil {
		return nil
	}
	size := d.GetNamedBufferParameteri64v(buffer, opengl.ParamBufferSize)
	return unsafe.Slice((*byte)(p), int(size))
}

func (Driver) UnmapNamedBuffer(buffer opengl.Handle) bool {
	return gl.UnmapNamedBuffer(uint32(buffer))
}

func (Driver) BindBuffer(target opengl.BufferTarget, buffer opengl.Handle) {
	gl.BindBuffer(uint32(target), uint32(buffer))
}

func (Driver) CreateShader(stage opengl.ShaderStage) opengl.Handle {
	return opengl.Handle(gl.CreateShader(uint32(stage)))
}

func (Driver) DeleteShader(shader opengl.Handle) {
	gl.DeleteShader(uint32(shader))
}

func (Driver) ShaderSource(shader opengl.Handle, source string) {
	csources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(uint32(shader), 1, csources, nil)
}

func (Driver) CompileShader(shader opengl.Handle) {
	gl.CompileShader(uint32(shader))
}

func (Driver) GetShaderiv(shader opengl.Handle, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(uint32(shader), pname, &v)
	return v
}

func (d Driver) GetShaderInfoLog(shader opengl.Handle) string {
	n := d.GetShaderiv(shader, opengl.ParamInfoLogLength)
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(uint32(shader), n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Driver) CreateProgram() opengl.Handle {
	return opengl.Handle(gl.CreateProgram())
}

func (Driver) DeleteProgram(program opengl.Handle) {
	gl.DeleteProgram(uint32(program))
}

func (Driver) AttachShader(program, shader opengl.Handle) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (Driver) DetachShader(program, shader opengl.Handle) {
	gl.DetachShader(uint32(program), uint32(shader))
}

func (Driver) LinkProgram(program opengl.Handle) {
	gl.LinkProgram(uint32(program))
}

func (Driver) GetProgramiv(program opengl.Handle, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(uint32(program), pname, &v)
	return v
}

func (d Driver) GetProgramInfoLog(program opengl.Handle) string {
	n := d.GetProgramiv(program, opengl.ParamInfoLogLength)
	if n <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(uint32(program), n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Driver) GetAttribLocation(program opengl.Handle, name string) int32 {
	return gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00"))
}

func (Driver) GetUniformLocation(program opengl.Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00"))
}

func (Driver) UseProgram(program opengl.Handle) {
	gl.UseProgram(uint32(program))
}

func (Driver) CreateVertexArray() opengl.Handle {
	var h uint32
	gl.CreateVertexArrays(1, &h)
	return opengl.Handle(h)
}

func (Driver) DeleteVertexArray(vao opengl.Handle) {
	h := uint32(vao)
	gl.DeleteVertexArrays(1, &h)
}

func (Driver) BindVertexArray(vao opengl.Handle) {
	gl.BindVertexArray(uint32(vao))
}

func (Driver) VertexArrayAttribFormat(vao opengl.Handle, index uint32, count int32, xtype opengl.ScalarType, normalized bool, offset uint32) {
	switch xtype {
	case opengl.Double:
		gl.VertexArrayAttribLFormat(uint32(vao), index, count, uint32(xtype), offset)
	default:
		gl.VertexArrayAttribFormat(uint32(vao), index, count, uint32(xtype), normalized, offset)
	}
}

func (Driver) VertexArrayAttribBinding(vao opengl.Handle, index, binding uint32) {
	gl.VertexArrayAttribBinding(uint32(vao), index, binding)
}

func (Driver) EnableVertexArrayAttrib(vao opengl.Handle, index uint32) {
	gl.EnableVertexArrayAttrib(uint32(vao), index)
}

func (Driver) DisableVertexArrayAttrib(vao opengl.Handle, index uint32) {
	gl.DisableVertexArrayAttrib(uint32(vao), index)
}

func (Driver) VertexArrayVertexBuffer(vao opengl.Handle, binding uint32, buffer opengl.Handle, offset int, stride int32) {
	gl.VertexArrayVertexBuffer(uint32(vao), binding, uint32(buffer), offset, stride)
}

func (Driver) VertexArrayElementBuffer(vao opengl.Handle, buffer opengl.Handle) {
	gl.VertexArrayElementBuffer(uint32(vao), uint32(buffer))
}

func (Driver) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (Driver) Uniform4fv(location int32, v mgl32.Vec4) {
	gl.Uniform4fv(location, 1, &v[0])
}

func (Driver) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (Driver) Clear(mask opengl.ClearMask) {
	gl.Clear(uint32(mask))
}

func (Driver) DrawArrays(mode opengl.PrimitiveKind, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (Driver) DrawElements(mode opengl.PrimitiveKind, count int32, xtype opengl.ScalarType, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(xtype), gl.PtrOffset(offset))
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}
