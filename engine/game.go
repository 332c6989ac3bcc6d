package engine

import (
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/scene"
	"github.com/spaghettifunk/lineage/engine/state"
)

// Game is supplied by the embedding program. Every hook is optional.
type Game struct {
	ApplicationConfig *ApplicationConfig
	// ConfigPath is watched for changes while running, if set.
	ConfigPath string

	FnInitialize Initialize
	FnBuildScene BuildScene
	FnUpdate     Update
	FnShutdown   Shutdown
}

// Initialize runs once the engine has created its context and managers.
type Initialize func(e *Engine) error

// BuildScene replaces the scene selected by ApplicationConfig.Scene.
type BuildScene func(d opengl.Driver) (*scene.Graph, error)

// Update runs after every iteration of the state loop.
type Update func(e *Engine, args state.StateArgs) error

type Shutdown func() error
