package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/renderer/vertex"
)

// SquareMesh builds a unit square in the xy plane, centred on the origin and
// facing +z, drawn as a triangle fan.
func SquareMesh(d opengl.Driver, color mgl32.Vec4) (*Mesh, error) {
	normal := mgl32.Vec3{0, 0, 1}
	vertices := []vertex.Vertex{
		{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: normal, Color: color, TexCoord: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: normal, Color: color, TexCoord: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: normal, Color: color, TexCoord: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: normal, Color: color, TexCoord: mgl32.Vec2{0, 1}},
	}
	return NewIndexedMesh(d, opengl.TriangleFan, vertices, []uint32{0, 1, 2, 3})
}

// CubeNode returns a unit cube made of six children, one per face, each
// drawing squareMesh.
func CubeNode(squareMesh int) Node {
	faces := []struct {
		name     string
		angle    float32
		axis     mgl32.Vec3
		position mgl32.Vec3
	}{
		{"front", 0, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 0.5}},
		{"back", 180, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -0.5}},
		{"left", 90, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{-0.5, 0, 0}},
		{"right", -90, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0.5, 0, 0}},
		{"top", -90, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0.5, 0}},
		{"bottom", 90, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, -0.5, 0}},
	}

	cube := NewNode()
	cube.Name = "cube"
	for _, f := range faces {
		face := NewNode(squareMesh)
		face.Name = f.name
		face.Transform = TransformFromPositionRotationScale(
			f.position,
			mgl32.QuatRotate(mgl32.DegToRad(f.angle), f.axis),
			mgl32.Vec3{1, 1, 1},
		)
		cube.AddChild(face)
	}
	return cube
}

// SingleCubeGraph is a graph holding one cube of the given color.
func SingleCubeGraph(d opengl.Driver, color mgl32.Vec4) (*Graph, error) {
	square, err := SquareMesh(d, color)
	if err != nil {
		return nil, err
	}
	return NewGraph([]*Mesh{square}, []Node{CubeNode(0)})
}

// MultipleCubesGraph is a large white cube at the origin surrounded by six
// cubes, one per axis direction, each with its own color.
func MultipleCubesGraph(d opengl.Driver) (*Graph, error) {
	colors := []mgl32.Vec4{ColorWhite, ColorRed, ColorGreen, ColorBlue, ColorCyan, ColorMagenta, ColorYellow}
	g := &Graph{}
	for _, c := range colors {
		m, err := SquareMesh(d, c)
		if err != nil {
			g.Destroy()
			return nil, fmt.Errorf("building square mesh: %w", err)
		}
		if _, err := g.AddMesh(m); err != nil {
			m.Destroy()
			g.Destroy()
			return nil, err
		}
	}

	center := CubeNode(0)
	center.Name = "center"
	center.Transform.SetScale(mgl32.Vec3{2, 2, 2})

	satellites := []struct {
		name     string
		position mgl32.Vec3
	}{
		{"left", mgl32.Vec3{-3, 0, 0}},
		{"top", mgl32.Vec3{0, 3, 0}},
		{"front", mgl32.Vec3{0, 0, 3}},
		{"right", mgl32.Vec3{3, 0, 0}},
		{"bottom", mgl32.Vec3{0, -3, 0}},
		{"back", mgl32.Vec3{0, 0, -3}},
	}
	nodes := []Node{center}
	for i, s := range satellites {
		n := CubeNode(i + 1)
		n.Name = s.name
		n.Transform.SetPosition(s.position)
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			g.Destroy()
			return nil, err
		}
	}
	return g, nil
}

// GraphBuilder names a scene constructor so configuration can select one.
type GraphBuilder func(d opengl.Driver) (*Graph, error)

// Builders maps configuration names onto scene constructors.
var Builders = map[string]GraphBuilder{
	"single_cube": func(d opengl.Driver) (*Graph, error) {
		return SingleCubeGraph(d, ColorWhite)
	},
	"multiple_cubes": MultipleCubesGraph,
}
