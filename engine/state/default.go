package state

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/renderer"
	"github.com/spaghettifunk/lineage/engine/scene"
)

// Rates applied while an input is held, per second.
const (
	TranslationSpeed float32 = 2
	RotationSpeed    float32 = math.Pi / 2
	ColorSpeed       float32 = 0.5
	ZoomSpeed        float32 = math.Pi / 6
)

// DefaultBackgroundColor is the clear color after construction and reset.
var DefaultBackgroundColor = mgl32.Vec4{0.1, 0.1, 0.1, 1}

var _ renderer.State = (*DefaultManager)(nil)

// DefaultManager moves the camera, the background color or one top level
// node of the scene graph according to the held inputs.
type DefaultManager struct {
	input        *core.InputManager
	subscription core.Subscription

	graph             *scene.Graph
	camera            scene.Camera
	background        mgl32.Vec4
	defaultBackground mgl32.Vec4
	mode              Mode
	selected          int

	// initial holds the transforms of the top level nodes, restored by reset
	// in object mode
	initial []scene.Transform
}

// NewDefaultManager observes input for mode, cycle and reset events. The
// manager does not take ownership of graph, which may be nil.
func NewDefaultManager(input *core.InputManager, graph *scene.Graph) (*DefaultManager, error) {
	m := &DefaultManager{
		input:             input,
		graph:             graph,
		camera:            scene.NewCamera(),
		background:        DefaultBackgroundColor,
		defaultBackground: DefaultBackgroundColor,
		mode:              ModeCamera,
	}
	if graph != nil {
		for _, n := range graph.Nodes() {
			m.initial = append(m.initial, n.Transform)
		}
	}
	sub, err := input.AddObserver(m.onInput)
	if err != nil {
		return nil, err
	}
	m.subscription = sub
	return m, nil
}

// Close stops observing the input manager.
func (m *DefaultManager) Close() {
	m.input.RemoveObserver(m.subscription)
}

func (m *DefaultManager) onInput(e core.InputEvent) {
	if e.State != core.InputStateActive {
		return
	}
	switch e.Type {
	case core.InputModeCamera:
		m.setMode(ModeCamera)
	case core.InputModeBackground:
		m.setMode(ModeBackground)
	case core.InputModeObject:
		m.setMode(ModeObject)
	case core.InputCycle:
		m.cycle()
	case core.InputReset:
		m.reset()
	}
}

func (m *DefaultManager) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	core.LogDebug("state mode changed to %s", mode)
}

func (m *DefaultManager) cycle() {
	if m.graph == nil || len(m.graph.Nodes()) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.graph.Nodes())
	core.LogDebug("selected node %d", m.selected)
}

func (m *DefaultManager) reset() {
	switch m.mode {
	case ModeCamera:
		m.camera.Reset()
	case ModeBackground:
		m.background = m.defaultBackground
	case ModeObject:
		if n := m.selectedNode(); n != nil && m.selected < len(m.initial) {
			n.Transform = m.initial[m.selected]
		}
	}
}

func (m *DefaultManager) selectedNode() *scene.Node {
	if m.graph == nil {
		return nil
	}
	return m.graph.Node(m.selected)
}

// Run integrates every held input over args.DeltaT.
func (m *DefaultManager) Run(args StateArgs) {
	dt := float32(args.DeltaT)
	switch m.mode {
	case ModeCamera:
		m.runCamera(dt)
	case ModeBackground:
		m.runBackground(dt)
	case ModeObject:
		m.runObject(dt)
	}
}

func (m *DefaultManager) runCamera(dt float32) {
	if t := m.translation(); t != (mgl32.Vec3{}) {
		m.camera.Move(t.Mul(TranslationSpeed * dt))
	}
	r := m.rotation().Mul(RotationSpeed * dt)
	if r[0] != 0 {
		m.camera.Pitch(r[0])
	}
	if r[1] != 0 {
		m.camera.Yaw(r[1])
	}
	if r[2] != 0 {
		m.camera.Roll(r[2])
	}
	if z := m.axis(core.InputCameraFovIncrease, core.InputCameraFovDecrease); z != 0 {
		m.camera.Zoom(z * ZoomSpeed * dt)
	}
}

func (m *DefaultManager) runBackground(dt float32) {
	delta := mgl32.Vec3{
		m.axis(core.InputColorRedIncrease, core.InputColorRedDecrease),
		m.axis(core.InputColorGreenIncrease, core.InputColorGreenDecrease),
		m.axis(core.InputColorBlueIncrease, core.InputColorBlueDecrease),
	}.Mul(ColorSpeed * dt)
	for i := 0; i < 3; i++ {
		m.background[i] = core.Clamp(m.background[i]+delta[i], 0, 1)
	}
}

func (m *DefaultManager) runObject(dt float32) {
	n := m.selectedNode()
	if n == nil {
		return
	}
	if t := m.translation(); t != (mgl32.Vec3{}) {
		n.Transform.Translate(t.Mul(TranslationSpeed * dt))
	}
	r := m.rotation().Mul(RotationSpeed * dt)
	if r != (mgl32.Vec3{}) {
		q := mgl32.AnglesToQuat(r[0], r[1], r[2], mgl32.XYZ)
		n.Transform.Rotate(q)
	}
}

// translation returns the held translate inputs as a direction, with
// forward along negative z.
func (m *DefaultManager) translation() mgl32.Vec3 {
	return mgl32.Vec3{
		m.axis(core.InputTranslateRight, core.InputTranslateLeft),
		m.axis(core.InputTranslateUp, core.InputTranslateDown),
		m.axis(core.InputTranslateBackward, core.InputTranslateForward),
	}
}

// rotation returns the held pitch, yaw and roll inputs. Positive values
// rotate counter-clockwise around x, y and z.
func (m *DefaultManager) rotation() mgl32.Vec3 {
	return mgl32.Vec3{
		m.axis(core.InputRotatePitchUp, core.InputRotatePitchDown),
		m.axis(core.InputRotateYawLeft, core.InputRotateYawRight),
		m.axis(core.InputRotateRollLeft, core.InputRotateRollRight),
	}
}

func (m *DefaultManager) axis(positive, negative core.InputType) float32 {
	var v float32
	if m.input.IsActive(positive) {
		v++
	}
	if m.input.IsActive(negative) {
		v--
	}
	return v
}

func (m *DefaultManager) TargetDeltaT() float64 {
	return TargetDeltaT
}

func (m *DefaultManager) Mode() Mode {
	return m.mode
}

// SelectedNode returns the index of the top level node moved in object mode.
func (m *DefaultManager) SelectedNode() int {
	return m.selected
}

func (m *DefaultManager) Camera() scene.Camera {
	return m.camera
}

func (m *DefaultManager) BackgroundColor() mgl32.Vec4 {
	return m.background
}

// SetBackgroundColor replaces the clear color and the color restored by a
// reset in background mode.
func (m *DefaultManager) SetBackgroundColor(c mgl32.Vec4) {
	m.background = c
	m.defaultBackground = c
}

func (m *DefaultManager) SceneGraph() *scene.Graph {
	return m.graph
}
