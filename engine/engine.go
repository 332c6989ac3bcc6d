package engine

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/platform"
	"github.com/spaghettifunk/lineage/engine/renderer"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl"
	"github.com/spaghettifunk/lineage/engine/scene"
	"github.com/spaghettifunk/lineage/engine/state"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

var ErrWrongStage = errors.New("engine is not in the expected stage")

type Engine struct {
	currentStage Stage
	gameInstance *Game
	config       *ApplicationConfig

	window  platform.Window
	driver  opengl.Driver
	context *opengl.Context

	input         *core.InputManager
	exitSub       core.Subscription
	graph         *scene.Graph
	stateManager  state.Manager
	renderManager renderer.RenderManager
	watcher       *ConfigWatcher
	reloads       <-chan *ApplicationConfig

	clock          *core.Clock
	metrics        *core.Metrics
	lastStateTime  float64
	lastRenderTime float64
}

// New prepares an engine drawing into window through d. The OpenGL context
// of window must be current on the calling thread.
func New(g *Game, window platform.Window, d opengl.Driver) (*Engine, error) {
	cfg := g.ApplicationConfig
	if cfg == nil {
		cfg = DefaultApplicationConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		config:       cfg,
		window:       window,
		driver:       d,
		clock:        core.NewClock(window.Time),
		metrics:      core.NewMetrics(),
	}, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return ErrWrongStage
	}
	e.applyLogLevel(e.config.LogLevel)

	ctx, err := opengl.NewContext(e.driver)
	if err != nil {
		return err
	}
	e.context = ctx

	e.input = core.NewInputManager()
	e.window.SetKeyCallback(e.input.HandleKey)
	e.exitSub, err = e.input.AddObserver(e.onInput)
	if err != nil {
		return err
	}

	kind, err := renderer.ParseManagerKind(e.config.Renderer.Manager)
	if err != nil {
		return err
	}
	if err := e.createStateManager(kind); err != nil {
		return err
	}

	rs, ok := e.stateManager.(renderer.State)
	if !ok {
		return fmt.Errorf("state manager %T cannot feed the renderer", e.stateManager)
	}
	rm, err := renderer.New(kind, ctx, rs, renderer.WithErrorPolling(e.config.Renderer.PollErrors))
	if err != nil {
		core.LogError("failed to initialize the renderer: %s", err)
		return err
	}
	e.renderManager = rm

	if path := e.gameInstance.ConfigPath; path != "" {
		w, err := WatchConfig(path)
		if err != nil {
			core.LogWarn("live config reload disabled: %s", err)
		} else {
			e.watcher = w
			e.reloads = w.Reloads()
		}
	}

	if fn := e.gameInstance.FnInitialize; fn != nil {
		if err := fn(e); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("Application launched successfully.")
	return nil
}

func (e *Engine) createStateManager(kind renderer.ManagerKind) error {
	if kind == renderer.PrototypeManager {
		e.stateManager = state.NewPrototypeManager()
		return nil
	}

	graph, err := e.buildScene()
	if err != nil {
		return err
	}
	e.graph = graph

	sm, err := state.NewDefaultManager(e.input, graph)
	if err != nil {
		return err
	}
	sm.SetBackgroundColor(e.config.BackgroundColor())
	e.stateManager = sm
	return nil
}

func (e *Engine) buildScene() (*scene.Graph, error) {
	if fn := e.gameInstance.FnBuildScene; fn != nil {
		return fn(e.driver)
	}
	if e.config.Scene == "" {
		return nil, nil
	}
	build, ok := scene.Builders[e.config.Scene]
	if !ok {
		return nil, fmt.Errorf("%w: unknown scene %q", ErrInvalidConfig, e.config.Scene)
	}
	graph, err := build(e.driver)
	if err != nil {
		return nil, fmt.Errorf("building scene %q: %w", e.config.Scene, err)
	}
	core.LogDebug("scene %q built with %d nodes", e.config.Scene, graph.NodeCount())
	return graph, nil
}

func (e *Engine) onInput(ev core.InputEvent) {
	if ev.Type == core.InputApplicationExit && ev.State == core.InputStateActive {
		e.window.SetShouldClose(true)
	}
}

// Run loops until the window is asked to close. The state and render
// managers each run when their own target delta has elapsed.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return ErrWrongStage
	}
	e.currentStage = EngineStageRunning
	core.LogInfo("Entering main application loop...")

	e.clock.Start()
	e.clock.Update()
	e.lastStateTime = e.clock.Elapsed()
	e.lastRenderTime = e.clock.Elapsed()

	for !e.window.ShouldClose() {
		e.window.PollEvents()
		e.clock.Update()
		now := e.clock.Elapsed()

		if delta := now - e.lastStateTime; delta >= e.stateManager.TargetDeltaT() {
			args := state.StateArgs{AbsT: now, DeltaT: delta}
			e.stateManager.Run(args)
			if fn := e.gameInstance.FnUpdate; fn != nil {
				if err := fn(e, args); err != nil {
					core.LogError("Game update failed, shutting down.")
					return err
				}
			}
			e.lastStateTime = now
		}

		if delta := now - e.lastRenderTime; delta >= e.renderManager.TargetDeltaT() {
			if err := e.renderFrame(now, delta); err != nil {
				core.LogError("Render failed, shutting down.")
				return err
			}
			e.lastRenderTime = now
		}

		e.drainReloads()
	}

	core.LogInfo("Exited main application loop.")
	return nil
}

func (e *Engine) renderFrame(now, delta float64) error {
	frameStartTime := e.window.Time()
	width, height := e.window.FramebufferSize()
	err := e.renderManager.Render(renderer.RenderArgs{
		AbsT:              now,
		DeltaT:            delta,
		FramebufferWidth:  width,
		FramebufferHeight: height,
	})
	if err != nil {
		return err
	}
	e.window.SwapBuffers()
	e.metrics.Update(e.window.Time() - frameStartTime)
	return nil
}

func (e *Engine) drainReloads() {
	for {
		select {
		case cfg := <-e.reloads:
			e.ApplyConfig(cfg)
		default:
			return
		}
	}
}

// ApplyConfig takes over the settings of cfg that can change while running:
// the log level and error polling. Everything else needs a restart.
func (e *Engine) ApplyConfig(cfg *ApplicationConfig) {
	e.applyLogLevel(cfg.LogLevel)
	if p, ok := e.renderManager.(renderer.ErrorPoller); ok {
		p.SetErrorPolling(cfg.Renderer.PollErrors)
	}
	e.config.LogLevel = cfg.LogLevel
	e.config.Renderer.PollErrors = cfg.Renderer.PollErrors
	core.LogInfo("configuration reloaded")
}

func (e *Engine) applyLogLevel(s string) {
	level, err := core.ParseLogLevel(s)
	if err != nil {
		core.LogWarn("unknown log level %q, keeping the current one", s)
		return
	}
	core.SetLogLevel(level)
}

// Shutdown releases everything Initialize created, including after a failed
// Initialize. Calling it twice is a no-op.
func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown || e.context == nil {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	core.LogInfo("Application terminating...")

	var errs []error
	if e.watcher != nil {
		errs = append(errs, e.watcher.Close())
	}
	if fn := e.gameInstance.FnShutdown; fn != nil {
		errs = append(errs, fn())
	}
	if sm, ok := e.stateManager.(*state.DefaultManager); ok {
		sm.Close()
	}
	if e.input != nil {
		e.input.RemoveObserver(e.exitSub)
	}
	if e.renderManager != nil {
		e.renderManager.Destroy()
	}
	if e.graph != nil {
		e.graph.Destroy()
	}
	e.context.Close()

	fps, ms := e.metrics.Frame()
	core.LogDebug("last measured %.1f fps, %.2f ms per frame", fps, ms)
	return errors.Join(errs...)
}

// RunGame drives g through the whole engine lifecycle on window and returns
// once the window closes. Shutdown always runs after a successful New, and
// its error is joined with the startup or run error.
func RunGame(g *Game, window platform.Window, d opengl.Driver) error {
	e, err := New(g, window, d)
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return errors.Join(fmt.Errorf("startup failed: %w", err), e.Shutdown())
	}
	return errors.Join(e.Run(), e.Shutdown())
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Config() *ApplicationConfig {
	return e.config
}

func (e *Engine) Context() *opengl.Context {
	return e.context
}

func (e *Engine) Input() *core.InputManager {
	return e.input
}

// SceneGraph returns the graph drawn by the default manager, or nil.
func (e *Engine) SceneGraph() *scene.Graph {
	return e.graph
}

func (e *Engine) StateManager() state.Manager {
	return e.stateManager
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}
