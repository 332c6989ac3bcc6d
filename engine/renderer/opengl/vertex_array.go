package opengl

import "sort"

// AttributeSpec describes how one vertex attribute is read from its buffer.
type AttributeSpec struct {
	Count      int32
	Type       ScalarType
	Normalized bool
	Offset     uint32
}

// AttributeState is the configuration recorded for an attribute slot.
type AttributeState struct {
	Spec    AttributeSpec
	Binding uint32
	Enabled bool
}

// BufferBinding is the buffer attached to a binding index.
type BufferBinding struct {
	Buffer Handle
	Offset int
	Stride int32
}

// VertexArray owns a vertex array object. It mirrors the format and binding
// state it has sent to the driver so callers can inspect it.
type VertexArray struct {
	noCopy noCopy

	driver     Driver
	handle     Handle
	attributes map[uint32]AttributeState
	bindings   map[uint32]BufferBinding
	elements   Handle
}

func NewVertexArray(d Driver) (*VertexArray, error) {
	h := d.CreateVertexArray()
	if h == InvalidHandle {
		return nil, newGraphicsError(d, "glCreateVertexArrays")
	}
	return &VertexArray{
		driver:     d,
		handle:     h,
		attributes: make(map[uint32]AttributeState),
		bindings:   make(map[uint32]BufferBinding),
	}, nil
}

func (v *VertexArray) Handle() Handle {
	return v.handle
}

func (v *VertexArray) Valid() bool {
	return v.handle != InvalidHandle
}

// Move transfers ownership of the handle and the recorded state to a new
// VertexArray. v is left invalid.
func (v *VertexArray) Move() *VertexArray {
	moved := &VertexArray{
		driver:     v.driver,
		handle:     v.handle,
		attributes: v.attributes,
		bindings:   v.bindings,
		elements:   v.elements,
	}
	v.handle = InvalidHandle
	v.attributes = make(map[uint32]AttributeState)
	v.bindings = make(map[uint32]BufferBinding)
	v.elements = InvalidHandle
	return moved
}

// Destroy releases the handle. It is a no-op on an invalid vertex array.
func (v *VertexArray) Destroy() {
	if v.handle == InvalidHandle {
		return
	}
	v.driver.DeleteVertexArray(v.handle)
	v.handle = InvalidHandle
}

func (v *VertexArray) SetAttributeFormat(index uint32, spec AttributeSpec) {
	v.driver.VertexArrayAttribFormat(v.handle, index, spec.Count, spec.Type, spec.Normalized, spec.Offset)
	a := v.attributes[index]
	a.Spec = spec
	v.attributes[index] = a
}

func (v *VertexArray) SetAttributeBinding(index, binding uint32) {
	v.driver.VertexArrayAttribBinding(v.handle, index, binding)
	a := v.attributes[index]
	a.Binding = binding
	v.attributes[index] = a
}

func (v *VertexArray) SetAttributeEnabled(index uint32, enabled bool) {
	if enabled {
		v.driver.EnableVertexArrayAttrib(v.handle, index)
	} else {
		v.driver.DisableVertexArrayAttrib(v.handle, index)
	}
	a := v.attributes[index]
	a.Enabled = enabled
	v.attributes[index] = a
}

// BindBuffer makes every attribute assigned to binding read from buffer,
// starting at offset and advancing stride bytes per vertex.
func (v *VertexArray) BindBuffer(binding uint32, buffer Bindable, offset int, stride int32) {
	h := handleOf(buffer)
	v.driver.VertexArrayVertexBuffer(v.handle, binding, h, offset, stride)
	if h == InvalidHandle {
		delete(v.bindings, binding)
		return
	}
	v.bindings[binding] = BufferBinding{Buffer: h, Offset: offset, Stride: stride}
}

func (v *VertexArray) UnbindBuffer(binding uint32) {
	v.BindBuffer(binding, nil, 0, 0)
}

// SetElementBuffer attaches the index buffer used by indexed draws. A nil
// buffer detaches it.
func (v *VertexArray) SetElementBuffer(buffer Bindable) {
	h := handleOf(buffer)
	v.driver.VertexArrayElementBuffer(v.handle, h)
	v.elements = h
}

// Attribute returns the recorded state of an attribute slot.
func (v *VertexArray) Attribute(index uint32) (AttributeState, bool) {
	a, ok := v.attributes[index]
	return a, ok
}

// Attributes returns the configured attribute slots in ascending order.
func (v *VertexArray) Attributes() []uint32 {
	indices := make([]uint32, 0, len(v.attributes))
	for i := range v.attributes {
		indices = append(indices, i)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// Binding returns the buffer attached to a binding index.
func (v *VertexArray) Binding(binding uint32) (BufferBinding, bool) {
	b, ok := v.bindings[binding]
	return b, ok
}

func (v *VertexArray) ElementBuffer() Handle {
	return v.elements
}
