package state

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/renderer"
	"github.com/spaghettifunk/lineage/engine/scene"
)

var _ renderer.State = (*PrototypeManager)(nil)

// PrototypeManager cycles the background color over time. It pairs with
// the prototype render manager.
type PrototypeManager struct {
	camera     scene.Camera
	background mgl32.Vec4
}

func NewPrototypeManager() *PrototypeManager {
	return &PrototypeManager{
		camera:     scene.NewCamera(),
		background: scene.ColorBlack,
	}
}

func (m *PrototypeManager) Run(args StateArgs) {
	m.background[0] = float32(math.Sin(args.AbsT))
	m.background[1] = float32(math.Cos(args.AbsT))
}

func (m *PrototypeManager) TargetDeltaT() float64 {
	return TargetDeltaT
}

func (m *PrototypeManager) Camera() scene.Camera {
	return m.camera
}

func (m *PrototypeManager) BackgroundColor() mgl32.Vec4 {
	return m.background
}

func (m *PrototypeManager) SceneGraph() *scene.Graph {
	return nil
}
