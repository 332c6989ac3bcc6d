package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/scene"
)

// TargetDeltaT is the render cadence of the bundled managers: 60 Hz.
const TargetDeltaT = 1.0 / 60.0

// BindingIndex is the vertex buffer binding slot used by the managers.
const BindingIndex uint32 = 0

// RenderArgs describes the frame being rendered.
type RenderArgs struct {
	AbsT              float64
	DeltaT            float64
	FramebufferWidth  int
	FramebufferHeight int
}

// AspectRatio returns width / height, or 0 for an empty framebuffer.
func (a RenderArgs) AspectRatio() float32 {
	if a.FramebufferHeight == 0 {
		return 0
	}
	return float32(a.FramebufferWidth) / float32(a.FramebufferHeight)
}

// RenderManager draws one frame per Render call. The application loop
// decides when to call it, based on TargetDeltaT.
type RenderManager interface {
	Render(args RenderArgs) error
	TargetDeltaT() float64
	Destroy()
}

// BackgroundState supplies the clear color.
type BackgroundState interface {
	BackgroundColor() mgl32.Vec4
}

// State is what the default manager reads from the state collaborator
// every frame.
type State interface {
	BackgroundState
	Camera() scene.Camera
	SceneGraph() *scene.Graph
}
