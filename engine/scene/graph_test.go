package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl/opengltest"
	"github.com/spaghettifunk/lineage/engine/renderer/vertex"
)

func TestSquareMesh(t *testing.T) {
	d := opengltest.New()
	m, err := SquareMesh(d, ColorRed)
	require.NoError(t, err)
	defer m.Destroy()

	assert.Equal(t, opengl.TriangleFan, m.Primitive())
	assert.Equal(t, int32(4), m.VertexCount())
	assert.Equal(t, int32(4), m.IndexCount())
	assert.Equal(t, opengl.UnsignedInt, m.IndexType())
	assert.True(t, m.IsIndexed())
	assert.Equal(t, vertex.VertexLayout, m.Layout())
	assert.Equal(t, 4*48, m.VertexBuffer().Size())
	assert.Equal(t, 16, m.IndexBuffer().Size())
	assert.True(t, m.VertexBuffer().IsImmutable())
}

func TestMeshConstructionErrors(t *testing.T) {
	d := opengltest.New()
	_, err := NewMesh[vertex.ColorVertex](d, opengl.Triangles, nil)
	assert.ErrorIs(t, err, ErrEmptyMesh)

	vertices := []vertex.ColorVertex{{}, {}, {}}
	_, err = NewIndexedMesh(d, opengl.Triangles, vertices, []uint16{0, 1, 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = NewIndexedMesh[vertex.ColorVertex, uint8](d, opengl.Triangles, vertices, nil)
	assert.ErrorIs(t, err, ErrEmptyIndices)
	assert.Equal(t, 0, d.LiveObjects())

	m, err := NewIndexedMesh(d, opengl.Triangles, vertices, []uint16{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, opengl.UnsignedShort, m.IndexType())
	assert.Equal(t, int32(28), m.Layout().Stride)
	m.Destroy()
	assert.Equal(t, 0, d.LiveObjects())
}

func TestMeshDraw(t *testing.T) {
	d := opengltest.New()
	ctx, err := opengl.NewContext(d)
	require.NoError(t, err)
	p, err := opengl.NewProgram(d)
	require.NoError(t, err)
	vao, err := opengl.NewVertexArray(d)
	require.NoError(t, err)

	indexed, err := SquareMesh(d, ColorBlue)
	require.NoError(t, err)
	plain, err := NewMesh(d, opengl.Triangles, []vertex.ColorVertex{{}, {}, {}})
	require.NoError(t, err)

	ctx.PushProgram(p)
	defer ctx.PopProgram()
	ctx.PushVertexArray(vao)
	defer ctx.PopVertexArray()

	indexed.Draw(ctx, vao, 0)
	plain.Draw(ctx, vao, 1)

	require.Len(t, d.Draws, 2)
	assert.Equal(t, opengltest.DrawCall{
		Mode: opengl.TriangleFan, Count: 4, Type: opengl.UnsignedInt, Indexed: true,
		Program: p.Handle(), VertexArray: vao.Handle(),
	}, d.Draws[0])
	assert.Equal(t, opengltest.DrawCall{
		Mode: opengl.Triangles, Count: 3,
		Program: p.Handle(), VertexArray: vao.Handle(),
	}, d.Draws[1])

	require.Len(t, d.VertexBinds, 2)
	assert.Equal(t, int32(48), d.VertexBinds[0].Stride)
	assert.Equal(t, indexed.VertexBuffer().Handle(), d.VertexBinds[0].Buffer)
	assert.Equal(t, uint32(1), d.VertexBinds[1].Binding)
	assert.Equal(t, int32(28), d.VertexBinds[1].Stride)
	assert.Equal(t, opengl.InvalidHandle, ctx.ActiveBuffer(opengl.ElementArrayBuffer))
	assert.Equal(t, 0, d.PendingErrors())
}

func TestNewGraphValidatesMeshIndices(t *testing.T) {
	d := opengltest.New()
	m, err := SquareMesh(d, ColorWhite)
	require.NoError(t, err)

	_, err = NewGraph([]*Mesh{m}, []Node{CubeNode(1)})
	assert.ErrorIs(t, err, ErrMeshIndexNotFound)

	g, err := NewGraph([]*Mesh{m}, []Node{CubeNode(0)})
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddNode(NewNode(0, 2)), ErrMeshIndexNotFound)
	assert.Len(t, g.Nodes(), 1)

	_, err = g.Mesh(1)
	assert.ErrorIs(t, err, ErrMeshIndexNotFound)
	got, err := g.Mesh(0)
	require.NoError(t, err)
	assert.Same(t, m, got)
}

func TestGraphRejectsNilMesh(t *testing.T) {
	d := opengltest.New()
	m, err := SquareMesh(d, ColorWhite)
	require.NoError(t, err)
	defer m.Destroy()

	_, err = NewGraph([]*Mesh{m, nil}, nil)
	assert.ErrorIs(t, err, ErrNilMesh)

	g := &Graph{}
	index, err := g.AddMesh(nil)
	assert.ErrorIs(t, err, ErrNilMesh)
	assert.Equal(t, -1, index)
	assert.Empty(t, g.Meshes())

	index, err = g.AddMesh(m)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.NotPanics(t, func() { g.Destroy() })
}

func TestAddChildIndexSurvivesGrowth(t *testing.T) {
	parent := NewNode()
	first := NewNode()
	first.Name = "first"
	i := parent.AddChild(first)
	for j := 0; j < 32; j++ {
		parent.AddChild(NewNode())
	}
	assert.Equal(t, 0, i)
	assert.Equal(t, "first", parent.Children[i].Name)
	assert.Equal(t, 33, parent.AddChild(NewNode()))
}

func TestMultipleCubesGraph(t *testing.T) {
	d := opengltest.New()
	g, err := MultipleCubesGraph(d)
	require.NoError(t, err)

	assert.Len(t, g.Meshes(), 7)
	assert.Len(t, g.Nodes(), 7)
	assert.Equal(t, 7*7, g.NodeCount())
	assert.NoError(t, g.Validate())
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, g.Node(0).Transform.Scale())
	assert.Equal(t, mgl32.Vec3{-3, 0, 0}, g.Node(1).Transform.Position())
	assert.Nil(t, g.Node(7))

	g.Destroy()
	assert.Equal(t, 0, d.LiveObjects())
}

func TestFindNode(t *testing.T) {
	d := opengltest.New()
	g, err := SingleCubeGraph(d, ColorGreen)
	require.NoError(t, err)
	defer g.Destroy()

	face := g.Node(0).Children[4]
	found := g.FindNode(face.ID)
	require.NotNil(t, found)
	assert.Equal(t, "top", found.Name)

	// the returned node is the stored one
	found.Transform.SetPosition(mgl32.Vec3{9, 9, 9})
	assert.Equal(t, mgl32.Vec3{9, 9, 9}, g.Node(0).Children[4].Transform.Position())

	assert.Nil(t, g.FindNode(uuid.New()))
}

func TestWalkOrderAndWorldMatrices(t *testing.T) {
	root := NewNode()
	root.Name = "root"
	root.Transform.SetPosition(mgl32.Vec3{1, 0, 0})
	child := NewNode()
	child.Name = "child"
	child.Transform.SetPosition(mgl32.Vec3{0, 1, 0})
	grandchild := NewNode()
	grandchild.Name = "grandchild"
	child.AddChild(grandchild)
	root.AddChild(child)
	sibling := NewNode()
	sibling.Name = "sibling"

	g, err := NewGraph(nil, []Node{root, sibling})
	require.NoError(t, err)

	var order []string
	worlds := map[string]mgl32.Vec3{}
	require.NoError(t, g.Walk(func(n *Node, world mgl32.Mat4) error {
		order = append(order, n.Name)
		worlds[n.Name] = transformPoint(world, mgl32.Vec3{})
		return nil
	}))
	assert.Equal(t, []string{"root", "child", "grandchild", "sibling"}, order)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, worlds["grandchild"])
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, worlds["sibling"])

	stop := errors.New("stop")
	visited := 0
	err = g.Walk(func(n *Node, world mgl32.Mat4) error {
		visited++
		if n.Name == "child" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited)
}
