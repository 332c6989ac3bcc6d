package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Graph owns a set of meshes and a forest of nodes referencing them by
// index.
type Graph struct {
	meshes []*Mesh
	nodes  []Node
}

// NewGraph takes ownership of meshes and nodes. It fails when a mesh is nil
// or a node references a mesh index outside meshes.
func NewGraph(meshes []*Mesh, nodes []Node) (*Graph, error) {
	for i, m := range meshes {
		if m == nil {
			return nil, fmt.Errorf("%w: meshes[%d]", ErrNilMesh, i)
		}
	}
	g := &Graph{meshes: meshes, nodes: nodes}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// AddMesh takes ownership of m and returns its index.
func (g *Graph) AddMesh(m *Mesh) (int, error) {
	if m == nil {
		return -1, ErrNilMesh
	}
	g.meshes = append(g.meshes, m)
	return len(g.meshes) - 1, nil
}

// AddNode appends a top level node after checking its mesh references.
func (g *Graph) AddNode(n Node) error {
	if err := g.validateNode(&n); err != nil {
		return err
	}
	g.nodes = append(g.nodes, n)
	return nil
}

func (g *Graph) Meshes() []*Mesh {
	return g.meshes
}

func (g *Graph) Mesh(i int) (*Mesh, error) {
	if i < 0 || i >= len(g.meshes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrMeshIndexNotFound, i, len(g.meshes))
	}
	return g.meshes[i], nil
}

// Nodes returns the top level nodes. Elements may be modified in place.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Node returns the i-th top level node, or nil.
func (g *Graph) Node(i int) *Node {
	if i < 0 || i >= len(g.nodes) {
		return nil
	}
	return &g.nodes[i]
}

// FindNode searches the whole forest for the node with the given id.
func (g *Graph) FindNode(id uuid.UUID) *Node {
	var found *Node
	g.walkNodes(func(n *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// NodeCount returns the number of nodes in the forest, at every depth.
func (g *Graph) NodeCount() int {
	count := 0
	for i := range g.nodes {
		count += g.nodes[i].Count()
	}
	return count
}

// Validate checks that every mesh reference in the forest resolves.
func (g *Graph) Validate() error {
	for i := range g.nodes {
		if err := g.validateNode(&g.nodes[i]); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) validateNode(n *Node) error {
	for _, m := range n.Meshes {
		if m < 0 || m >= len(g.meshes) {
			return fmt.Errorf("%w: node %s references mesh %d of %d", ErrMeshIndexNotFound, n.ID, m, len(g.meshes))
		}
	}
	for i := range n.Children {
		if err := g.validateNode(&n.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// WalkFunc is called for every node with its world matrix. Returning an
// error stops the walk.
type WalkFunc func(n *Node, world mgl32.Mat4) error

// Walk visits the forest depth first in array order. A node is visited
// before its children, and each child's world matrix is its parent's world
// matrix times its own local matrix.
func (g *Graph) Walk(fn WalkFunc) error {
	for i := range g.nodes {
		if err := walk(&g.nodes[i], mgl32.Ident4(), fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(n *Node, parent mgl32.Mat4, fn WalkFunc) error {
	world := n.Transform.World(parent)
	if err := fn(n, world); err != nil {
		return err
	}
	for i := range n.Children {
		if err := walk(&n.Children[i], world, fn); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) walkNodes(fn func(*Node) bool) {
	var visit func(n *Node) bool
	visit = func(n *Node) bool {
		if !fn(n) {
			return false
		}
		for i := range n.Children {
			if !visit(&n.Children[i]) {
				return false
			}
		}
		return true
	}
	for i := range g.nodes {
		if !visit(&g.nodes[i]) {
			return
		}
	}
}

// Destroy releases every mesh owned by the graph.
func (g *Graph) Destroy() {
	for _, m := range g.meshes {
		m.Destroy()
	}
	g.meshes = nil
	g.nodes = nil
}
