package vertex

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl/opengltest"
)

func TestColorVertexLayout(t *testing.T) {
	l, ok := Lookup[ColorVertex]()
	require.True(t, ok)
	assert.Equal(t, int32(28), l.Stride)

	pos, ok := l.Attribute(Position)
	require.True(t, ok)
	assert.Equal(t, int32(3), pos.Count)
	assert.Equal(t, opengl.Float, pos.Type)
	assert.Equal(t, uint32(0), pos.Offset)

	color, ok := l.Attribute(Color)
	require.True(t, ok)
	assert.Equal(t, int32(4), color.Count)
	assert.Equal(t, opengl.Float, color.Type)
	assert.Equal(t, uint32(12), color.Offset)

	_, ok = l.Attribute(Normal)
	assert.False(t, ok)
}

func TestDeclaredOffsetsMatchMemory(t *testing.T) {
	var v Vertex
	offsets := map[Semantic]uintptr{
		Position: unsafe.Offsetof(v.Position),
		Normal:   unsafe.Offsetof(v.Normal),
		Color:    unsafe.Offsetof(v.Color),
		TexCoord: unsafe.Offsetof(v.TexCoord),
	}
	for _, a := range VertexLayout.Attributes {
		assert.Equal(t, uint32(offsets[a.Semantic]), a.Offset, a.Semantic.String())
	}
	assert.Equal(t, int32(unsafe.Sizeof(v)), VertexLayout.Stride)

	for _, declared := range []Layout{VertexLayout, ColorVertexLayout} {
		var derived Layout
		var err error
		if declared.Name == "Vertex" {
			derived, err = Describe[Vertex]()
		} else {
			derived, err = Describe[ColorVertex]()
		}
		require.NoError(t, err)
		assert.Equal(t, declared, derived)
	}
}

type packedVertex struct {
	Position [2]int16 `vertex:"position"`
	_        [4]byte
	Color    [4]uint8 `vertex:"color,normalized,name=tint"`
	Depth    float32
}

func TestDescribeTags(t *testing.T) {
	l, err := Describe[packedVertex]()
	require.NoError(t, err)
	assert.Equal(t, "packedVertex", l.Name)
	assert.Equal(t, int32(16), l.Stride)
	require.Len(t, l.Attributes, 2)

	assert.Equal(t, Attribute{
		Semantic:      Position,
		Name:          "vertex_position",
		AttributeSpec: opengl.AttributeSpec{Count: 2, Type: opengl.Short, Offset: 0},
	}, l.Attributes[0])
	assert.Equal(t, Attribute{
		Semantic:      Color,
		Name:          "tint",
		AttributeSpec: opengl.AttributeSpec{Count: 4, Type: opengl.UnsignedByte, Normalized: true, Offset: 8},
	}, l.Attributes[1])
}

type duplicateVertex struct {
	A mgl32.Vec3 `vertex:"position"`
	B mgl32.Vec3 `vertex:"position"`
}

type badFieldVertex struct {
	A [5]float32 `vertex:"position"`
}

type unknownVertex struct {
	A float32 `vertex:"tangent"`
}

func TestDescribeErrors(t *testing.T) {
	_, err := Describe[int]()
	assert.ErrorIs(t, err, ErrNotStruct)
	_, err = Describe[duplicateVertex]()
	assert.ErrorIs(t, err, ErrDuplicateSemantic)
	_, err = Describe[badFieldVertex]()
	assert.ErrorIs(t, err, ErrUnsupportedField)
	_, err = Describe[unknownVertex]()
	assert.ErrorIs(t, err, ErrUnknownSemantic)
	_, err = Describe[struct{ X float32 }]()
	assert.ErrorIs(t, err, ErrNoAttributes)
}

type misdeclaredVertex struct {
	Position mgl32.Vec3 `vertex:"position"`
	Color    mgl32.Vec4 `vertex:"color"`
}

func TestLayoutEqual(t *testing.T) {
	assert.True(t, VertexLayout.Equal(VertexLayout))
	assert.False(t, VertexLayout.Equal(ColorVertexLayout))

	derived, err := Describe[ColorVertex]()
	require.NoError(t, err)
	assert.True(t, ColorVertexLayout.Equal(derived))

	// same memory, different type
	other, err := Describe[misdeclaredVertex]()
	require.NoError(t, err)
	assert.False(t, ColorVertexLayout.Equal(other))

	moved := derived
	moved.Attributes = append([]Attribute(nil), derived.Attributes...)
	moved.Attributes[1].Offset = 16
	assert.False(t, ColorVertexLayout.Equal(moved))
}

func TestRegisterPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Register[misdeclaredVertex](Layout{
			Stride: 28,
			Attributes: []Attribute{
				{Semantic: Position, Name: "vertex_position", AttributeSpec: opengl.AttributeSpec{Count: 3, Type: opengl.Float}},
				{Semantic: Color, Name: "vertex_color", AttributeSpec: opengl.AttributeSpec{Count: 4, Type: opengl.Float, Offset: 16}},
			},
		})
	})
	_, ok := Lookup[misdeclaredVertex]()
	assert.False(t, ok)

	assert.Panics(t, func() {
		Register[misdeclaredVertex](Layout{Stride: 32})
	})
}

func TestLayoutOfFallsBackToDescribe(t *testing.T) {
	l, err := LayoutOf[packedVertex]()
	require.NoError(t, err)
	assert.Equal(t, int32(16), l.Stride)

	l, err = LayoutOf[Vertex]()
	require.NoError(t, err)
	assert.Equal(t, VertexLayout, l)
}

const vertexSource = `#version 450 core
layout(location = 0) in vec3 vertex_position;
layout(location = 1) in vec4 vertex_color;
void main() { gl_Position = vec4(vertex_position, 1.0); }
`

const fragmentSource = `#version 450 core
out vec4 frag_color;
void main() { frag_color = vec4(1.0); }
`

func TestConfigure(t *testing.T) {
	d := opengltest.New()
	p, err := opengl.BuildProgram(d,
		opengl.ShaderSource{Stage: opengl.VertexShader, Source: vertexSource},
		opengl.ShaderSource{Stage: opengl.FragmentShader, Source: fragmentSource},
	)
	require.NoError(t, err)
	vao, err := opengl.NewVertexArray(d)
	require.NoError(t, err)

	// the program has no normal or texcoord input
	assert.Equal(t, 2, Configure(vao, p, 0, VertexLayout))
	assert.Equal(t, []uint32{0, 1}, vao.Attributes())

	color, ok := vao.Attribute(1)
	require.True(t, ok)
	assert.Equal(t, uint32(24), color.Spec.Offset)
	assert.Equal(t, int32(4), color.Spec.Count)
	assert.True(t, color.Enabled)
}

func TestConfigureIndexed(t *testing.T) {
	d := opengltest.New()
	vao, err := opengl.NewVertexArray(d)
	require.NoError(t, err)

	n := ConfigureIndexed(vao, 3, ColorVertexLayout, map[Semantic]uint32{Position: 5, Color: 6, Normal: 7})
	assert.Equal(t, 2, n)

	spec, binding, enabled, ok := d.AttributeFormat(vao.Handle(), 6)
	require.True(t, ok)
	assert.Equal(t, uint32(12), spec.Offset)
	assert.Equal(t, uint32(3), binding)
	assert.True(t, enabled)
	_, _, _, ok = d.AttributeFormat(vao.Handle(), 7)
	assert.False(t, ok)
}
