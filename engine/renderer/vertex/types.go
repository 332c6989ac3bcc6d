package vertex

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
)

// Vertex is the full vertex used by scene meshes.
type Vertex struct {
	Position mgl32.Vec3 `vertex:"position"`
	Normal   mgl32.Vec3 `vertex:"normal"`
	Color    mgl32.Vec4 `vertex:"color"`
	TexCoord mgl32.Vec2 `vertex:"texcoord"`
}

// ColorVertex carries only a position and a color.
type ColorVertex struct {
	Position mgl32.Vec3 `vertex:"position"`
	Color    mgl32.Vec4 `vertex:"color"`
}

var VertexLayout = Register[Vertex](Layout{
	Name:   "Vertex",
	Stride: 48,
	Attributes: []Attribute{
		{Semantic: Position, Name: "vertex_position", AttributeSpec: opengl.AttributeSpec{Count: 3, Type: opengl.Float, Offset: 0}},
		{Semantic: Normal, Name: "vertex_normal", AttributeSpec: opengl.AttributeSpec{Count: 3, Type: opengl.Float, Offset: 12}},
		{Semantic: Color, Name: "vertex_color", AttributeSpec: opengl.AttributeSpec{Count: 4, Type: opengl.Float, Offset: 24}},
		{Semantic: TexCoord, Name: "vertex_texcoord", AttributeSpec: opengl.AttributeSpec{Count: 2, Type: opengl.Float, Offset: 40}},
	},
})

var ColorVertexLayout = Register[ColorVertex](Layout{
	Name:   "ColorVertex",
	Stride: 28,
	Attributes: []Attribute{
		{Semantic: Position, Name: "vertex_position", AttributeSpec: opengl.AttributeSpec{Count: 3, Type: opengl.Float, Offset: 0}},
		{Semantic: Color, Name: "vertex_color", AttributeSpec: opengl.AttributeSpec{Count: 4, Type: opengl.Float, Offset: 12}},
	},
})

// Compile time guards: the build fails if a field moves away from the
// offset declared above.
func _() {
	var x [1]struct{}
	_ = x[unsafe.Offsetof(Vertex{}.Position)-0]
	_ = x[unsafe.Offsetof(Vertex{}.Normal)-12]
	_ = x[unsafe.Offsetof(Vertex{}.Color)-24]
	_ = x[unsafe.Offsetof(Vertex{}.TexCoord)-40]
	_ = x[unsafe.Sizeof(Vertex{})-48]
	_ = x[unsafe.Offsetof(ColorVertex{}.Position)-0]
	_ = x[unsafe.Offsetof(ColorVertex{}.Color)-12]
	_ = x[unsafe.Sizeof(ColorVertex{})-28]
}
