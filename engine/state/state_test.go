package state

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl/opengltest"
	"github.com/spaghettifunk/lineage/engine/scene"
)

func press(im *core.InputManager, key core.KeyCode, mods core.ModifierKey) {
	im.HandleKey(key, core.ACTION_PRESS, mods)
}

func release(im *core.InputManager, key core.KeyCode) {
	im.HandleKey(key, core.ACTION_RELEASE, core.MOD_NONE)
}

func newDefaultManager(t *testing.T) (*core.InputManager, *DefaultManager, *scene.Graph) {
	t.Helper()
	graph, err := scene.MultipleCubesGraph(opengltest.New())
	require.NoError(t, err)
	im := core.NewInputManager()
	m, err := NewDefaultManager(im, graph)
	require.NoError(t, err)
	t.Cleanup(func() {
		m.Close()
		graph.Destroy()
	})
	return im, m, graph
}

func TestModeSwitching(t *testing.T) {
	im, m, _ := newDefaultManager(t)
	assert.Equal(t, ModeCamera, m.Mode())

	press(im, core.KEY_F2, core.MOD_NONE)
	assert.Equal(t, ModeBackground, m.Mode())
	release(im, core.KEY_F2)

	press(im, core.KEY_F3, core.MOD_NONE)
	assert.Equal(t, ModeObject, m.Mode())
	release(im, core.KEY_F3)

	press(im, core.KEY_F1, core.MOD_NONE)
	assert.Equal(t, ModeCamera, m.Mode())
	assert.Equal(t, "object", ModeObject.String())
}

func TestCycleWrapsAround(t *testing.T) {
	im, m, graph := newDefaultManager(t)
	count := len(graph.Nodes())
	require.Equal(t, 7, count)

	for i := 1; i <= count; i++ {
		press(im, core.KEY_TAB, core.MOD_NONE)
		release(im, core.KEY_TAB)
		assert.Equal(t, i%count, m.SelectedNode())
	}
}

func TestCycleWithoutGraph(t *testing.T) {
	im := core.NewInputManager()
	m, err := NewDefaultManager(im, nil)
	require.NoError(t, err)
	defer m.Close()

	press(im, core.KEY_TAB, core.MOD_NONE)
	assert.Equal(t, 0, m.SelectedNode())
	m.Run(StateArgs{DeltaT: 1})
	assert.Nil(t, m.SceneGraph())
}

func TestCameraTranslation(t *testing.T) {
	im, m, _ := newDefaultManager(t)

	press(im, core.KEY_W, core.MOD_NONE)
	m.Run(StateArgs{AbsT: 0.5, DeltaT: 0.5})
	release(im, core.KEY_W)
	m.Run(StateArgs{AbsT: 1, DeltaT: 0.5})

	// forward is negative z: 0.5 s at TranslationSpeed
	assert.InDelta(t, 5-TranslationSpeed*0.5, m.Camera().Position.Z(), 1e-5)
	assert.InDelta(t, 0, m.Camera().Position.X(), 1e-5)
}

func TestCameraRotationAndReset(t *testing.T) {
	im, m, _ := newDefaultManager(t)

	press(im, core.KEY_D, core.MOD_SHIFT)
	m.Run(StateArgs{DeltaT: 1})
	release(im, core.KEY_D)
	assert.False(t, m.Camera().Rotation.ApproxEqual(mgl32.QuatIdent()))

	press(im, core.KEY_X, core.MOD_NONE)
	release(im, core.KEY_X)
	assert.Equal(t, scene.NewCamera(), m.Camera())
}

func TestCameraZoomIsClamped(t *testing.T) {
	im, m, _ := newDefaultManager(t)

	press(im, core.KEY_RIGHT_BRACKET, core.MOD_NONE)
	m.Run(StateArgs{DeltaT: 100})
	assert.Equal(t, scene.MaxFieldOfView, m.Camera().FieldOfView)
}

func TestBackgroundColor(t *testing.T) {
	im, m, _ := newDefaultManager(t)
	press(im, core.KEY_F2, core.MOD_NONE)
	release(im, core.KEY_F2)

	press(im, core.KEY_U, core.MOD_NONE)
	press(im, core.KEY_K, core.MOD_NONE)
	m.Run(StateArgs{DeltaT: 10})

	c := m.BackgroundColor()
	assert.Equal(t, float32(1), c[0])
	assert.Equal(t, float32(0), c[1])
	assert.Equal(t, DefaultBackgroundColor[2], c[2])
	assert.Equal(t, float32(1), c[3])

	release(im, core.KEY_U)
	release(im, core.KEY_K)
	press(im, core.KEY_X, core.MOD_NONE)
	assert.Equal(t, DefaultBackgroundColor, m.BackgroundColor())
}

func TestObjectMode(t *testing.T) {
	im, m, graph := newDefaultManager(t)
	press(im, core.KEY_F3, core.MOD_NONE)
	release(im, core.KEY_F3)
	press(im, core.KEY_TAB, core.MOD_NONE)
	release(im, core.KEY_TAB)

	selected := graph.Node(1)
	start := selected.Transform.Position()

	press(im, core.KEY_R, core.MOD_NONE)
	m.Run(StateArgs{DeltaT: 0.25})
	release(im, core.KEY_R)

	moved := selected.Transform.Position()
	assert.InDelta(t, start.Y()+TranslationSpeed*0.25, moved.Y(), 1e-5)
	assert.Equal(t, graph.Node(0).Transform.Position(), mgl32.Vec3{})
	// the camera is untouched in object mode
	assert.Equal(t, scene.DefaultCameraPosition, m.Camera().Position)

	press(im, core.KEY_X, core.MOD_NONE)
	assert.Equal(t, start, selected.Transform.Position())
}

func TestPrototypeManager(t *testing.T) {
	m := NewPrototypeManager()
	assert.Equal(t, scene.ColorBlack, m.BackgroundColor())

	m.Run(StateArgs{AbsT: math.Pi / 2, DeltaT: TargetDeltaT})
	c := m.BackgroundColor()
	assert.InDelta(t, 1, c[0], 1e-6)
	assert.InDelta(t, 0, c[1], 1e-6)
	assert.Equal(t, float32(1), c[3])
	assert.Nil(t, m.SceneGraph())
	assert.Equal(t, TargetDeltaT, m.TargetDeltaT())
}
