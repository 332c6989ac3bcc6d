package scene

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/lineage/engine/core"
)

// Node is an element of the scene tree. Meshes are indices into the owning
// Graph; children are owned by value, so the structure can never contain a
// cycle.
type Node struct {
	ID        uuid.UUID
	Name      string
	Meshes    []int
	Children  []Node
	Transform Transform
}

// NewNode returns a node at the origin drawing the given meshes.
func NewNode(meshes ...int) Node {
	return Node{
		ID:        core.NewID(),
		Meshes:    meshes,
		Transform: NewTransform(),
	}
}

// AddChild appends child and returns its index in Children.
func (n *Node) AddChild(child Node) int {
	n.Children = append(n.Children, child)
	return len(n.Children) - 1
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 1
	for i := range n.Children {
		count += n.Children[i].Count()
	}
	return count
}
