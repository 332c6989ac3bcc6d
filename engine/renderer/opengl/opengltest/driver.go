// Package opengltest provides an in-memory opengl.Driver that records every
// call. It simulates enough of the GL object model for the wrappers, the
// context facade and the render managers to run without a GPU.
package opengltest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
)

var _ opengl.Driver = (*Driver)(nil)

// DrawCall is one recorded DrawArrays or DrawElements call.
type DrawCall struct {
	Mode    opengl.PrimitiveKind
	First   int32
	Count   int32
	Type    opengl.ScalarType
	Offset  int
	Indexed bool

	Program     opengl.Handle
	VertexArray opengl.Handle
}

// VertexBufferBind is one recorded VertexArrayVertexBuffer call.
type VertexBufferBind struct {
	VertexArray opengl.Handle
	Binding     uint32
	Buffer      opengl.Handle
	Offset      int
	Stride      int32
}

// UniformUpload is one recorded uniform call. Exactly one of the value fields
// is meaningful, depending on Kind.
type UniformUpload struct {
	Kind     string
	Location int32
	Program  opengl.Handle
	Float    float32
	Vec4     mgl32.Vec4
	Mat4     mgl32.Mat4
}

type buffer struct {
	data      []byte
	allocated bool
	immutable bool
	flags     opengl.StorageFlags
	usage     opengl.BufferUsage
	mapped    bool
	access    opengl.MapAccess
}

type shader struct {
	stage    opengl.ShaderStage
	source   string
	compiled bool
	log      string
}

type program struct {
	attached   map[opengl.Handle]struct{}
	linked     bool
	log        string
	attributes map[string]int32
	uniforms   map[string]int32
}

type attribute struct {
	format  opengl.AttributeSpec
	binding uint32
	enabled bool
}

type vertexArray struct {
	attributes map[uint32]*attribute
	elements   opengl.Handle
}

// Driver is the recording fake. The zero value is not usable; call New.
type Driver struct {
	Vendor                 string
	Renderer               string
	Version                string
	ShadingLanguageVersion string
	Extensions             []string

	// FailAllocations makes every Create* call return the invalid handle and
	// queue GL_OUT_OF_MEMORY.
	FailAllocations bool

	// FailLink makes every LinkProgram call fail with LinkLog.
	FailLink bool
	LinkLog  string

	Draws            []DrawCall
	VertexBinds      []VertexBufferBind
	Uniforms         []UniformUpload
	ViewportRect     [4]int32
	ClearedColor     mgl32.Vec4
	ClearMasks       []opengl.ClearMask
	ProgramInUse     opengl.Handle
	BoundVAO         opengl.Handle
	BoundBuffers     map[opengl.BufferTarget]opengl.Handle
	ProgramUses      []opengl.Handle
	VertexArrayBinds []opengl.Handle

	calls    map[string]int
	errors   []opengl.ErrorCode
	next     opengl.Handle
	buffers  map[opengl.Handle]*buffer
	shaders  map[opengl.Handle]*shader
	programs map[opengl.Handle]*program
	vaos     map[opengl.Handle]*vertexArray
}

func New() *Driver {
	return &Driver{
		Vendor:                 "lineage",
		Renderer:               "opengltest",
		Version:                "4.5.0 opengltest",
		ShadingLanguageVersion: "4.50",
		Extensions:             []string{"GL_ARB_buffer_storage", "GL_ARB_direct_state_access"},
		BoundBuffers:           make(map[opengl.BufferTarget]opengl.Handle),
		calls:                  make(map[string]int),
		buffers:                make(map[opengl.Handle]*buffer),
		shaders:                make(map[opengl.Handle]*shader),
		programs:               make(map[opengl.Handle]*program),
		vaos:                   make(map[opengl.Handle]*vertexArray),
	}
}

// Calls returns how many times the named Driver method was invoked.
func (d *Driver) Calls(method string) int {
	return d.calls[method]
}

// ResetCalls clears the call counters and the recorded frame activity but
// keeps every live object.
func (d *Driver) ResetCalls() {
	d.calls = make(map[string]int)
	d.Draws = nil
	d.VertexBinds = nil
	d.Uniforms = nil
	d.ClearMasks = nil
	d.ProgramUses = nil
	d.VertexArrayBinds = nil
}

// QueueError appends code to the driver error queue.
func (d *Driver) QueueError(code opengl.ErrorCode) {
	d.errors = append(d.errors, code)
}

// PendingErrors returns the number of queued error codes.
func (d *Driver) PendingErrors() int {
	return len(d.errors)
}

// LiveObjects returns the number of objects not yet deleted.
func (d *Driver) LiveObjects() int {
	return len(d.buffers) + len(d.shaders) + len(d.programs) + len(d.vaos)
}

// BufferContents returns a copy of a buffer's storage.
func (d *Driver) BufferContents(h opengl.Handle) []byte {
	b, ok := d.buffers[h]
	if !ok {
		return nil
	}
	return append([]byte(nil), b.data...)
}

// AttributeFormat returns the format recorded on the driver side for a
// vertex array attribute.
func (d *Driver) AttributeFormat(vao opengl.Handle, index uint32) (opengl.AttributeSpec, uint32, bool, bool) {
	v, ok := d.vaos[vao]
	if !ok {
		return opengl.AttributeSpec{}, 0, false, false
	}
	a, ok := v.attributes[index]
	if !ok {
		return opengl.AttributeSpec{}, 0, false, false
	}
	return a.format, a.binding, a.enabled, true
}

// LastUniform returns the most recent upload to location, if any.
func (d *Driver) LastUniform(location int32) (UniformUpload, bool) {
	for i := len(d.Uniforms) - 1; i >= 0; i-- {
		if d.Uniforms[i].Location == location {
			return d.Uniforms[i], true
		}
	}
	return UniformUpload{}, false
}

func (d *Driver) record(method string) {
	d.calls[method]++
}

func (d *Driver) fail(code opengl.ErrorCode) {
	d.errors = append(d.errors, code)
}

func (d *Driver) allocate(method string) opengl.Handle {
	d.record(method)
	if d.FailAllocations {
		d.fail(opengl.OutOfMemory)
		return opengl.InvalidHandle
	}
	d.next++
	return d.next
}

func (d *Driver) GetError() opengl.ErrorCode {
	d.record("GetError")
	if len(d.errors) == 0 {
		return opengl.NoError
	}
	code := d.errors[0]
	d.errors = d.errors[1:]
	return code
}

func (d *Driver) GetString(name opengl.StringName) string {
	d.record("GetString")
	switch name {
	case opengl.Vendor:
		return d.Vendor
	case opengl.RendererName:
		return d.Renderer
	case opengl.Version:
		return d.Version
	case opengl.ShadingLanguageVersion:
		return d.ShadingLanguageVersion
	}
	d.fail(opengl.InvalidEnum)
	return ""
}

func (d *Driver) GetStringi(name opengl.StringName, index uint32) string {
	d.record("GetStringi")
	if name != opengl.Extensions || int(index) >= len(d.Extensions) {
		d.fail(opengl.InvalidValue)
		return ""
	}
	return d.Extensions[index]
}

func (d *Driver) GetIntegerv(pname uint32) int32 {
	d.record("GetIntegerv")
	if pname == opengl.ParamNumExtensions {
		return int32(len(d.Extensions))
	}
	d.fail(opengl.InvalidEnum)
	return 0
}

// buffers

func (d *Driver) CreateBuffer() opengl.Handle {
	h := d.allocate("CreateBuffer")
	if h != opengl.InvalidHandle {
		d.buffers[h] = &buffer{access: opengl.ReadWrite}
	}
	return h
}

func (d *Driver) DeleteBuffer(h opengl.Handle) {
	d.record("DeleteBuffer")
	delete(d.buffers, h)
	for target, bound := range d.BoundBuffers {
		if bound == h {
			d.BoundBuffers[target] = opengl.InvalidHandle
		}
	}
}

func (d *Driver) NamedBufferStorage(h opengl.Handle, data []byte, flags opengl.StorageFlags) {
	d.record("NamedBufferStorage")
	b, ok := d.buffers[h]
	if !ok || b.immutable {
		d.fail(opengl.InvalidOperation)
		return
	}
	b.data = append([]byte(nil), data...)
	b.allocated = true
	b.immutable = true
	b.flags = flags
	b.usage = opengl.DynamicDraw
}

func (d *Driver) NamedBufferData(h opengl.Handle, data []byte, usage opengl.BufferUsage) {
	d.record("NamedBufferData")
	b, ok := d.buffers[h]
	if !ok || b.immutable {
		d.fail(opengl.InvalidOperation)
		return
	}
	b.data = append([]byte(nil), data...)
	b.allocated = true
	b.usage = usage
	b.flags = opengl.MapReadBit | opengl.MapWriteBit | opengl.DynamicStorageBit
}

func (d *Driver) NamedBufferSubData(h opengl.Handle, offset int, data []byte) {
	d.record("NamedBufferSubData")
	b, ok := d.buffers[h]
	switch {
	case !ok || b.mapped:
		d.fail(opengl.InvalidOperation)
	case b.immutable && b.flags&opengl.DynamicStorageBit == 0:
		d.fail(opengl.InvalidOperation)
	case offset < 0 || offset+len(data) > len(b.data):
		d.fail(opengl.InvalidValue)
	default:
		copy(b.data[offset:], data)
	}
}

func (d *Driver) GetNamedBufferSubData(h opengl.Handle, offset int, dst []byte) {
	d.record("GetNamedBufferSubData")
	b, ok := d.buffers[h]
	switch {
	case !ok:
		d.fail(opengl.InvalidOperation)
	case offset < 0 || offset+len(dst) > len(b.data):
		d.fail(opengl.InvalidValue)
	default:
		copy(dst, b.data[offset:])
	}
}

func (d *Driver) GetNamedBufferParameteriv(h opengl.Handle, pname uint32) int32 {
	d.record("GetNamedBufferParameteriv")
	return int32(d.bufferParameter(h, pname))
}

func (d *Driver) GetNamedBufferParameteri64v(h opengl.Handle, pname uint32) int64 {
	d.record("GetNamedBufferParameteri64v")
	return d.bufferParameter(h, pname)
}

func (d *Driver) bufferParameter(h opengl.Handle, pname uint32) int64 {
	b, ok := d.buffers[h]
	if !ok {
		d.fail(opengl.InvalidOperation)
		return 0
	}
	switch pname {
	case opengl.ParamBufferSize:
		return int64(len(b.data))
	case opengl.ParamBufferUsage:
		return int64(b.usage)
	case opengl.ParamBufferImmutableStorage:
		return boolInt(b.immutable)
	case opengl.ParamBufferStorageFlags:
		return int64(b.flags)
	case opengl.ParamBufferMapped:
		return boolInt(b.mapped)
	case opengl.ParamBufferAccess:
		return int64(b.access)
	case opengl.ParamBufferMapOffset:
		return 0
	case opengl.ParamBufferMapLength:
		if b.mapped {
			return int64(len(b.data))
		}
		return 0
	}
	d.fail(opengl.InvalidEnum)
	return 0
}

func (d *Driver) MapNamedBuffer(h opengl.Handle, access opengl.MapAccess) []byte {
	d.record("MapNamedBuffer")
	b, ok := d.buffers[h]
	if !ok || b.mapped || len(b.data) == 0 {
		d.fail(opengl.InvalidOperation)
		return nil
	}
	if b.immutable {
		if (access == opengl.ReadOnly || access == opengl.ReadWrite) && b.flags&opengl.MapReadBit == 0 ||
			(access == opengl.WriteOnly || access == opengl.ReadWrite) && b.flags&opengl.MapWriteBit == 0 {
			d.fail(opengl.InvalidOperation)
			return nil
		}
	}
	b.mapped = true
	b.access = access
	return b.data
}

func (d *Driver) UnmapNamedBuffer(h opengl.Handle) bool {
	d.record("UnmapNamedBuffer")
	b, ok := d.buffers[h]
	if !ok || !b.mapped {
		d.fail(opengl.InvalidOperation)
		return false
	}
	b.mapped = false
	return true
}

func (d *Driver) BindBuffer(target opengl.BufferTarget, h opengl.Handle) {
	d.record("BindBuffer")
	if _, ok := d.buffers[h]; !ok && h != opengl.InvalidHandle {
		d.fail(opengl.InvalidValue)
		return
	}
	d.BoundBuffers[target] = h
	// the element array binding is part of the bound vertex array state
	if target == opengl.ElementArrayBuffer && d.BoundVAO != opengl.InvalidHandle {
		d.vaos[d.BoundVAO].elements = h
	}
}

// shaders

func (d *Driver) CreateShader(stage opengl.ShaderStage) opengl.Handle {
	h := d.allocate("CreateShader")
	if h != opengl.InvalidHandle {
		d.shaders[h] = &shader{stage: stage}
	}
	return h
}

func (d *Driver) DeleteShader(h opengl.Handle) {
	d.record("DeleteShader")
	delete(d.shaders, h)
}

func (d *Driver) ShaderSource(h opengl.Handle, source string) {
	d.record("ShaderSource")
	s, ok := d.shaders[h]
	if !ok {
		d.fail(opengl.InvalidValue)
		return
	}
	s.source = source
}

var mainPattern = regexp.MustCompile(`void\s+main\s*\(\s*(void)?\s*\)\s*\{`)

// CompileShader accepts any source starting with a #version directive and
// defining main. Anything else fails with a compiler style diagnostic.
func (d *Driver) CompileShader(h opengl.Handle) {
	d.record("CompileShader")
	s, ok := d.shaders[h]
	if !ok {
		d.fail(opengl.InvalidValue)
		return
	}
	switch {
	case !strings.HasPrefix(strings.TrimSpace(s.source), "#version"):
		s.compiled = false
		s.log = "0:1(1): error: #version directive must be the first statement"
	case !mainPattern.MatchString(s.source):
		s.compiled = false
		s.log = fmt.Sprintf("0:%d(1): error: %s has no definition of main()", lineCount(s.source), s.stage)
	default:
		s.compiled = true
		s.log = ""
	}
}

func (d *Driver) GetShaderiv(h opengl.Handle, pname uint32) int32 {
	d.record("GetShaderiv")
	s, ok := d.shaders[h]
	if !ok {
		d.fail(opengl.InvalidValue)
		return 0
	}
	switch pname {
	case opengl.ParamShaderType:
		return int32(s.stage)
	case opengl.ParamCompileStatus:
		return int32(boolInt(s.compiled))
	case opengl.ParamInfoLogLength:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	}
	d.fail(opengl.InvalidEnum)
	return 0
}

func (d *Driver) GetShaderInfoLog(h opengl.Handle) string {
	d.record("GetShaderInfoLog")
	if s, ok := d.shaders[h]; ok {
		return s.log
	}
	d.fail(opengl.InvalidValue)
	return ""
}

// programs

func (d *Driver) CreateProgram() opengl.Handle {
	h := d.allocate("CreateProgram")
	if h != opengl.InvalidHandle {
		d.programs[h] = &program{attached: make(map[opengl.Handle]struct{})}
	}
	return h
}

func (d *Driver) DeleteProgram(h opengl.Handle) {
	d.record("DeleteProgram")
	delete(d.programs, h)
	if d.ProgramInUse == h {
		d.ProgramInUse = opengl.InvalidHandle
	}
}

func (d *Driver) AttachShader(p, s opengl.Handle) {
	d.record("AttachShader")
	prog, ok := d.programs[p]
	if _, shaderOK := d.shaders[s]; !ok || !shaderOK {
		d.fail(opengl.InvalidValue)
		return
	}
	if _, dup := prog.attached[s]; dup {
		d.fail(opengl.InvalidOperation)
		return
	}
	prog.attached[s] = struct{}{}
}

func (d *Driver) DetachShader(p, s opengl.Handle) {
	d.record("DetachShader")
	prog, ok := d.programs[p]
	if !ok {
		d.fail(opengl.InvalidValue)
		return
	}
	if _, attached := prog.attached[s]; !attached {
		d.fail(opengl.InvalidOperation)
		return
	}
	delete(prog.attached, s)
}

var (
	attributePattern = regexp.MustCompile(`(?:layout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*)?\bin\s+\w+\s+(\w+)\s*;`)
	uniformPattern   = regexp.MustCompile(`\buniform\s+\w+\s+(\w+)\s*;`)
)

// LinkProgram succeeds when a compiled vertex and fragment shader are
// attached. Active attributes and uniforms are read from the sources.
func (d *Driver) LinkProgram(h opengl.Handle) {
	d.record("LinkProgram")
	p, ok := d.programs[h]
	if !ok {
		d.fail(opengl.InvalidValue)
		return
	}
	p.linked = false
	p.attributes = make(map[string]int32)
	p.uniforms = make(map[string]int32)

	if d.FailLink {
		p.log = d.LinkLog
		if p.log == "" {
			p.log = "error: linking failed"
		}
		return
	}

	var vertex, fragment bool
	var sources []*shader
	for sh := range p.attached {
		s := d.shaders[sh]
		if s == nil || !s.compiled {
			p.log = "error: attached shader is not compiled"
			return
		}
		vertex = vertex || s.stage == opengl.VertexShader
		fragment = fragment || s.stage == opengl.FragmentShader
		sources = append(sources, s)
	}
	if !vertex || !fragment {
		p.log = "error: program requires a vertex and a fragment shader"
		return
	}

	next := int32(0)
	for _, s := range sources {
		if s.stage != opengl.VertexShader {
			continue
		}
		for _, m := range attributePattern.FindAllStringSubmatch(s.source, -1) {
			loc := next
			if m[1] != "" {
				n, _ := strconv.Atoi(m[1])
				loc = int32(n)
			}
			p.attributes[m[2]] = loc
			if loc >= next {
				next = loc + 1
			}
		}
	}
	for _, s := range sources {
		for _, m := range uniformPattern.FindAllStringSubmatch(s.source, -1) {
			if _, seen := p.uniforms[m[1]]; !seen {
				p.uniforms[m[1]] = int32(len(p.uniforms))
			}
		}
	}
	p.linked = true
	p.log = ""
}

func (d *Driver) GetProgramiv(h opengl.Handle, pname uint32) int32 {
	d.record("GetProgramiv")
	p, ok := d.programs[h]
	if !ok {
		d.fail(opengl.InvalidValue)
		return 0
	}
	switch pname {
	case opengl.ParamLinkStatus:
		return int32(boolInt(p.linked))
	case opengl.ParamInfoLogLength:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	case opengl.ParamAttachedCount:
		return int32(len(p.attached))
	case opengl.ParamActiveAttrib:
		return int32(len(p.attributes))
	case opengl.ParamActiveUniform:
		return int32(len(p.uniforms))
	}
	d.fail(opengl.InvalidEnum)
	return 0
}

func (d *Driver) GetProgramInfoLog(h opengl.Handle) string {
	d.record("GetProgramInfoLog")
	if p, ok := d.programs[h]; ok {
		return p.log
	}
	d.fail(opengl.InvalidValue)
	return ""
}

func (d *Driver) GetAttribLocation(h opengl.Handle, name string) int32 {
	d.record("GetAttribLocation")
	p, ok := d.programs[h]
	if !ok || !p.linked {
		d.fail(opengl.InvalidOperation)
		return -1
	}
	if loc, ok := p.attributes[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) GetUniformLocation(h opengl.Handle, name string) int32 {
	d.record("GetUniformLocation")
	p, ok := d.programs[h]
	if !ok || !p.linked {
		d.fail(opengl.InvalidOperation)
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) UseProgram(h opengl.Handle) {
	d.record("UseProgram")
	if _, ok := d.programs[h]; !ok && h != opengl.InvalidHandle {
		d.fail(opengl.InvalidValue)
		return
	}
	d.ProgramInUse = h
	d.ProgramUses = append(d.ProgramUses, h)
}

// vertex arrays

func (d *Driver) CreateVertexArray() opengl.Handle {
	h := d.allocate("CreateVertexArray")
	if h != opengl.InvalidHandle {
		d.vaos[h] = &vertexArray{attributes: make(map[uint32]*attribute)}
	}
	return h
}

func (d *Driver) DeleteVertexArray(h opengl.Handle) {
	d.record("DeleteVertexArray")
	delete(d.vaos, h)
	if d.BoundVAO == h {
		d.BoundVAO = opengl.InvalidHandle
	}
}

func (d *Driver) BindVertexArray(h opengl.Handle) {
	d.record("BindVertexArray")
	if _, ok := d.vaos[h]; !ok && h != opengl.InvalidHandle {
		d.fail(opengl.InvalidOperation)
		return
	}
	d.BoundVAO = h
	d.VertexArrayBinds = append(d.VertexArrayBinds, h)
}

func (d *Driver) vaoAttribute(vao opengl.Handle, index uint32) *attribute {
	v, ok := d.vaos[vao]
	if !ok {
		d.fail(opengl.InvalidOperation)
		return nil
	}
	a, ok := v.attributes[index]
	if !ok {
		a = &attribute{}
		v.attributes[index] = a
	}
	return a
}

func (d *Driver) VertexArrayAttribFormat(vao opengl.Handle, index uint32, count int32, xtype opengl.ScalarType, normalized bool, offset uint32) {
	d.record("VertexArrayAttribFormat")
	if count < 1 || count > 4 {
		d.fail(opengl.InvalidValue)
		return
	}
	if a := d.vaoAttribute(vao, index); a != nil {
		a.format = opengl.AttributeSpec{Count: count, Type: xtype, Normalized: normalized, Offset: offset}
	}
}

func (d *Driver) VertexArrayAttribBinding(vao opengl.Handle, index, binding uint32) {
	d.record("VertexArrayAttribBinding")
	if a := d.vaoAttribute(vao, index); a != nil {
		a.binding = binding
	}
}

func (d *Driver) EnableVertexArrayAttrib(vao opengl.Handle, index uint32) {
	d.record("EnableVertexArrayAttrib")
	if a := d.vaoAttribute(vao, index); a != nil {
		a.enabled = true
	}
}

func (d *Driver) DisableVertexArrayAttrib(vao opengl.Handle, index uint32) {
	d.record("DisableVertexArrayAttrib")
	if a := d.vaoAttribute(vao, index); a != nil {
		a.enabled = false
	}
}

func (d *Driver) VertexArrayVertexBuffer(vao opengl.Handle, binding uint32, buf opengl.Handle, offset int, stride int32) {
	d.record("VertexArrayVertexBuffer")
	if _, ok := d.vaos[vao]; !ok {
		d.fail(opengl.InvalidOperation)
		return
	}
	if _, ok := d.buffers[buf]; !ok && buf != opengl.InvalidHandle {
		d.fail(opengl.InvalidOperation)
		return
	}
	d.VertexBinds = append(d.VertexBinds, VertexBufferBind{
		VertexArray: vao,
		Binding:     binding,
		Buffer:      buf,
		Offset:      offset,
		Stride:      stride,
	})
}

func (d *Driver) VertexArrayElementBuffer(vao opengl.Handle, buf opengl.Handle) {
	d.record("VertexArrayElementBuffer")
	v, ok := d.vaos[vao]
	if !ok {
		d.fail(opengl.InvalidOperation)
		return
	}
	v.elements = buf
}

// uniforms

func (d *Driver) Uniform1f(location int32, v float32) {
	d.record("Uniform1f")
	d.upload(UniformUpload{Kind: "float", Location: location, Float: v})
}

func (d *Driver) Uniform4fv(location int32, v mgl32.Vec4) {
	d.record("Uniform4fv")
	d.upload(UniformUpload{Kind: "vec4", Location: location, Vec4: v})
}

func (d *Driver) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	d.record("UniformMatrix4fv")
	d.upload(UniformUpload{Kind: "mat4", Location: location, Mat4: m})
}

func (d *Driver) upload(u UniformUpload) {
	if d.ProgramInUse == opengl.InvalidHandle {
		d.fail(opengl.InvalidOperation)
		return
	}
	// location -1 is silently ignored by GL
	if u.Location < 0 {
		return
	}
	u.Program = d.ProgramInUse
	d.Uniforms = append(d.Uniforms, u)
}

// frame

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport")
	if width < 0 || height < 0 {
		d.fail(opengl.InvalidValue)
		return
	}
	d.ViewportRect = [4]int32{x, y, width, height}
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor")
	d.ClearedColor = mgl32.Vec4{r, g, b, a}
}

func (d *Driver) Clear(mask opengl.ClearMask) {
	d.record("Clear")
	d.ClearMasks = append(d.ClearMasks, mask)
}

func (d *Driver) DrawArrays(mode opengl.PrimitiveKind, first, count int32) {
	d.record("DrawArrays")
	if !d.readyToDraw() {
		return
	}
	d.Draws = append(d.Draws, DrawCall{
		Mode:        mode,
		First:       first,
		Count:       count,
		Program:     d.ProgramInUse,
		VertexArray: d.BoundVAO,
	})
}

func (d *Driver) DrawElements(mode opengl.PrimitiveKind, count int32, xtype opengl.ScalarType, offset int) {
	d.record("DrawElements")
	if !d.readyToDraw() {
		return
	}
	if d.vaos[d.BoundVAO].elements == opengl.InvalidHandle {
		d.fail(opengl.InvalidOperation)
		return
	}
	d.Draws = append(d.Draws, DrawCall{
		Mode:        mode,
		Count:       count,
		Type:        xtype,
		Offset:      offset,
		Indexed:     true,
		Program:     d.ProgramInUse,
		VertexArray: d.BoundVAO,
	})
}

func (d *Driver) readyToDraw() bool {
	if d.ProgramInUse == opengl.InvalidHandle || d.BoundVAO == opengl.InvalidHandle {
		d.fail(opengl.InvalidOperation)
		return false
	}
	return true
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
