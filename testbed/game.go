package testbed

import (
	"errors"
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/lineage/engine"
	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/state"
)

// SpinSpeed is the rotation of the center cube around y, in radians per
// second.
const SpinSpeed float32 = 0.5

type TestGame struct {
	*engine.Game
	spin bool
}

// NewTestGame loads configPath, falling back to the defaults when the file
// does not exist.
func NewTestGame(configPath string) (*TestGame, error) {
	cfg, err := engine.LoadApplicationConfig(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		core.LogInfo("%s not found, using the default configuration", configPath)
		cfg = engine.DefaultApplicationConfig()
		configPath = ""
	case err != nil:
		return nil, err
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: cfg,
			ConfigPath:        configPath,
		},
		spin: true,
	}
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown
	return tg, nil
}

func (g *TestGame) Initialize(e *engine.Engine) error {
	info := e.Context().Info()
	core.LogDebug("testbed running on %s (%s)", info.Renderer, info.APIVersion)
	return nil
}

// Update spins the first top level node while the state manager is not
// moving objects.
func (g *TestGame) Update(e *engine.Engine, args state.StateArgs) error {
	graph := e.SceneGraph()
	if !g.spin || graph == nil {
		return nil
	}
	if sm, ok := e.StateManager().(*state.DefaultManager); ok && sm.Mode() == state.ModeObject {
		return nil
	}
	if n := graph.Node(0); n != nil {
		n.Transform.Rotate(mgl32.QuatRotate(SpinSpeed*float32(args.DeltaT), mgl32.Vec3{0, 1, 0}))
	}
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogDebug("testbed shut down")
	return nil
}
