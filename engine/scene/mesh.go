package scene

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/renderer/vertex"
)

var (
	ErrEmptyMesh         = errors.New("mesh has no vertices")
	ErrEmptyIndices      = errors.New("indexed mesh has no indices")
	ErrIndexOutOfRange   = errors.New("mesh index out of range")
	ErrMeshIndexNotFound = errors.New("node references a mesh that does not exist")
	ErrNilMesh           = errors.New("mesh is nil")
)

// Index is the set of element types accepted for index buffers.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// Mesh is GPU resident vertex data, optionally indexed, with the metadata
// needed to draw it. It cannot be modified after construction.
type Mesh struct {
	layout    vertex.Layout
	primitive opengl.PrimitiveKind

	vertices    *opengl.Buffer
	vertexCount int32

	indices    *opengl.Buffer
	indexCount int32
	indexType  opengl.ScalarType
}

// NewMesh uploads vertices into an immutable buffer.
func NewMesh[V any](d opengl.Driver, primitive opengl.PrimitiveKind, vertices []V) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	layout, err := vertex.LayoutOf[V]()
	if err != nil {
		return nil, err
	}
	buf, err := opengl.NewImmutableBuffer(d, opengl.Bytes(vertices), 0)
	if err != nil {
		return nil, fmt.Errorf("creating vertex buffer: %w", err)
	}
	return &Mesh{
		layout:      layout,
		primitive:   primitive,
		vertices:    buf,
		vertexCount: int32(len(vertices)),
	}, nil
}

// NewIndexedMesh uploads vertices and indices into immutable buffers. Every
// index must address one of the vertices.
func NewIndexedMesh[V any, I Index](d opengl.Driver, primitive opengl.PrimitiveKind, vertices []V, indices []I) (*Mesh, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyIndices
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("%w: indices[%d] = %d, %d vertices", ErrIndexOutOfRange, i, idx, len(vertices))
		}
	}
	m, err := NewMesh(d, primitive, vertices)
	if err != nil {
		return nil, err
	}
	buf, err := opengl.NewImmutableBuffer(d, opengl.Bytes(indices), 0)
	if err != nil {
		m.Destroy()
		return nil, fmt.Errorf("creating index buffer: %w", err)
	}
	m.indices = buf
	m.indexCount = int32(len(indices))
	m.indexType = indexTypeOf[I]()
	return m, nil
}

func indexTypeOf[I Index]() opengl.ScalarType {
	var zero I
	switch unsafe.Sizeof(zero) {
	case 1:
		return opengl.UnsignedByte
	case 2:
		return opengl.UnsignedShort
	default:
		return opengl.UnsignedInt
	}
}

func (m *Mesh) Layout() vertex.Layout {
	return m.layout
}

func (m *Mesh) Primitive() opengl.PrimitiveKind {
	return m.primitive
}

func (m *Mesh) VertexCount() int32 {
	return m.vertexCount
}

func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

func (m *Mesh) IndexType() opengl.ScalarType {
	return m.indexType
}

func (m *Mesh) IsIndexed() bool {
	return m.indices != nil
}

func (m *Mesh) VertexBuffer() *opengl.Buffer {
	return m.vertices
}

func (m *Mesh) IndexBuffer() *opengl.Buffer {
	return m.indices
}

// Draw binds the vertex buffer to binding on vao, which must be the active
// vertex array, and issues one draw call.
func (m *Mesh) Draw(ctx *opengl.Context, vao *opengl.VertexArray, binding uint32) {
	vao.BindBuffer(binding, m.vertices, 0, m.layout.Stride)
	if m.indices == nil {
		ctx.DrawArrays(m.primitive, 0, m.vertexCount)
		return
	}
	ctx.PushBuffer(opengl.ElementArrayBuffer, m.indices)
	defer ctx.PopBuffer(opengl.ElementArrayBuffer)
	ctx.DrawElements(m.primitive, m.indexCount, m.indexType, 0)
}

// Destroy releases the vertex and index buffers.
func (m *Mesh) Destroy() {
	if m.vertices != nil {
		m.vertices.Destroy()
	}
	if m.indices != nil {
		m.indices.Destroy()
	}
}
